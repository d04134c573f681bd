package bedloader_test

import (
	"strings"
	"testing"

	"github.com/tidx/ivtree/internal/bedloader"
	"github.com/tidx/ivtree/internal/genome"
)

const validBed = "chr1\t100\t200\tgeneA\n" +
	"chr1\t150\t250\tgeneB\textra1\textra2\n" +
	"chr2\t0\t50\tgeneC\n"

func TestLoad_Valid(t *testing.T) {
	idx := genome.New()
	loader := bedloader.NewLoader(0)

	accepted, rejected, err := loader.Load(strings.NewReader(validBed), idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accepted != 3 {
		t.Errorf("expected 3 accepted rows, got %d", accepted)
	}
	if rejected != 0 {
		t.Errorf("expected 0 rejected rows, got %d", rejected)
	}
	if idx.ShardCount() != 2 {
		t.Errorf("expected 2 shards, got %d", idx.ShardCount())
	}

	hits := idx.Query("chr1", 160, 170)
	if len(hits) != 2 {
		t.Errorf("expected 2 overlapping intervals on chr1, got %d", len(hits))
	}
}

func TestLoad_MalformedRows(t *testing.T) {
	data := "chr1\t100\t200\tok\n" +
		"chr1\tnotanumber\t200\tbad\n" +
		"chr1\t300\n" +
		"chr1\t500\t400\tinverted\n"

	idx := genome.New()
	loader := bedloader.NewLoader(0)

	accepted, rejected, err := loader.Load(strings.NewReader(data), idx)
	if err == nil {
		t.Fatal("expected a joined error describing the malformed rows")
	}
	if accepted != 1 {
		t.Errorf("expected 1 accepted row, got %d", accepted)
	}
	if rejected != 3 {
		t.Errorf("expected 3 rejected rows, got %d", rejected)
	}
}

func TestLoad_EmptyInput(t *testing.T) {
	idx := genome.New()
	loader := bedloader.NewLoader(0)

	accepted, rejected, err := loader.Load(strings.NewReader(""), idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accepted != 0 || rejected != 0 {
		t.Errorf("expected no rows processed, got accepted=%d rejected=%d", accepted, rejected)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tidx/ivtree/internal/bedloader"
	"github.com/tidx/ivtree/internal/config"
	"github.com/tidx/ivtree/internal/genome"
	"github.com/tidx/ivtree/internal/metrics"
)

func loadCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load BED files into a genome index per an ingestion manifest",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLoad(manifestPath)
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "path to the ingestion manifest YAML file")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}

func readManifest(path string) (*config.Manifest, error) {
	file, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()
	return config.ReadManifest(file)
}

func runLoad(manifestPath string) error {
	manifest, err := readManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	idx := genome.New()
	collector := metrics.NewCollector()

	for _, src := range manifest.Sources {
		if err := loadSource(idx, collector, src); err != nil {
			log.Error().Err(err).Str("path", src.Path).Msg("some rows were rejected")
		}
	}

	collector.RecordShardTotals(idx.ShardCount(), idx.IntervalCount())
	log.Info().
		Int("shards", idx.ShardCount()).
		Int("intervals", idx.IntervalCount()).
		Msg("load complete")
	return nil
}

func loadSource(idx *genome.Index, collector metrics.Collector, src config.Source) error {
	file, err := os.Open(src.Path) // #nosec G304
	if err != nil {
		return fmt.Errorf("open %s: %w", src.Path, err)
	}
	defer file.Close()

	loader := bedloader.NewLoader(src.ChromColumn)
	accepted, rejected, err := loader.Load(file, idx)
	collector.RecordLoad(src.Path, accepted, rejected)

	if src.MergeMode != config.MergeModeNone {
		for _, chrom := range idx.Chromosomes() {
			idx.MergeShard(chrom, src.MergeMode == config.MergeModeStrict)
		}
	}

	log.Info().
		Str("path", src.Path).
		Int("accepted", accepted).
		Int("rejected", rejected).
		Msg("source loaded")
	return err
}

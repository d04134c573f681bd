// Package metrics provides Prometheus metrics for BED ingestion.
package metrics

// LoadCollector collects metrics for a single source load.
type LoadCollector interface {
	RecordLoad(shard string, accepted, rejected int)
}

// ShardCollector collects metrics about the current state of the genome
// index as a whole.
type ShardCollector interface {
	RecordShardTotals(shards int, intervals int)
}

// Collector combines all metric collection interfaces.
type Collector interface {
	LoadCollector
	ShardCollector
}

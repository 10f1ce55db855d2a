package memutils

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StatisticsCollector exports the Statistics of any number of sources as Prometheus gauges.
// Sources are read on every scrape, so the collector never holds stale figures.
type StatisticsCollector struct {
	sources []StatisticsSource

	arenaBytes      *prometheus.Desc
	allocationBytes *prometheus.Desc
	allocations     *prometheus.Desc
}

var _ prometheus.Collector = &StatisticsCollector{}

// NewStatisticsCollector creates a collector whose metrics are prefixed with namespace and carry the
// constant label name=<name>.
func NewStatisticsCollector(namespace, name string, sources ...StatisticsSource) *StatisticsCollector {
	labels := prometheus.Labels{"name": name}
	return &StatisticsCollector{
		sources: sources,
		arenaBytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "arena", "bytes"),
			"Bytes available to clients across all arenas.",
			nil, labels,
		),
		allocationBytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "allocation", "bytes"),
			"Arena bytes claimed by live allocations.",
			nil, labels,
		),
		allocations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "allocations", "live"),
			"Number of live allocations.",
			nil, labels,
		),
	}
}

func (c *StatisticsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.arenaBytes
	ch <- c.allocationBytes
	ch <- c.allocations
}

func (c *StatisticsCollector) Collect(ch chan<- prometheus.Metric) {
	var stats Statistics
	for _, source := range c.sources {
		source.AddStatistics(&stats)
	}

	ch <- prometheus.MustNewConstMetric(c.arenaBytes, prometheus.GaugeValue, float64(stats.ArenaBytes))
	ch <- prometheus.MustNewConstMetric(c.allocationBytes, prometheus.GaugeValue, float64(stats.AllocationBytes))
	ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.GaugeValue, float64(stats.AllocationCount))
}

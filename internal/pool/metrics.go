package pool

import "github.com/prometheus/client_golang/prometheus"

var (
	capacityDesc = prometheus.NewDesc("ourchat_pool_capacity", "Configured number of slots", []string{"pool"}, nil)
	sizeDesc     = prometheus.NewDesc("ourchat_pool_size", "Live resources, idle or checked out", []string{"pool"}, nil)
	idleDesc     = prometheus.NewDesc("ourchat_pool_idle", "Resources available for acquisition", []string{"pool"}, nil)
	activeDesc   = prometheus.NewDesc("ourchat_pool_active", "Resources currently checked out", []string{"pool"}, nil)

	evictionsDesc       = prometheus.NewDesc("ourchat_pool_evictions_total", "Resources discarded after a failed health check", []string{"pool"}, nil)
	reconnectsDesc      = prometheus.NewDesc("ourchat_pool_reconnects_total", "Resources reopened by the sweep", []string{"pool"}, nil)
	connectFailuresDesc = prometheus.NewDesc("ourchat_pool_connect_failures_total", "Failed attempts to open a resource", []string{"pool"}, nil)
	acquireWaitsDesc    = prometheus.NewDesc("ourchat_pool_acquire_waits_total", "Acquire calls that had to wait", []string{"pool"}, nil)
)

// StatsSource is implemented by *Pool[T] for any T.
type StatsSource interface {
	Name() string
	Stats() Stats
	counterSet() *counters
}

func (p *Pool[T]) counterSet() *counters {
	return &p.stats
}

// Collector exports pool statistics to Prometheus.
type Collector struct {
	pools []StatsSource
}

func NewCollector(pools ...StatsSource) *Collector {
	return &Collector{pools: pools}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- capacityDesc
	ch <- sizeDesc
	ch <- idleDesc
	ch <- activeDesc
	ch <- evictionsDesc
	ch <- reconnectsDesc
	ch <- connectFailuresDesc
	ch <- acquireWaitsDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, p := range c.pools {
		name := p.Name()
		s := p.Stats()
		ch <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(s.Capacity), name)
		ch <- prometheus.MustNewConstMetric(sizeDesc, prometheus.GaugeValue, float64(s.Size), name)
		ch <- prometheus.MustNewConstMetric(idleDesc, prometheus.GaugeValue, float64(s.Idle), name)
		ch <- prometheus.MustNewConstMetric(activeDesc, prometheus.GaugeValue, float64(s.Active), name)

		cnt := p.counterSet()
		ch <- prometheus.MustNewConstMetric(evictionsDesc, prometheus.CounterValue, float64(cnt.evictions.Load()), name)
		ch <- prometheus.MustNewConstMetric(reconnectsDesc, prometheus.CounterValue, float64(cnt.reconnects.Load()), name)
		ch <- prometheus.MustNewConstMetric(connectFailuresDesc, prometheus.CounterValue, float64(cnt.connectFailures.Load()), name)
		ch <- prometheus.MustNewConstMetric(acquireWaitsDesc, prometheus.CounterValue, float64(cnt.acquireWaits.Load()), name)
	}
}

// Package metrics records minefield query statistics on a private
// Prometheus registry.
//
// A nil *Recorder is valid and records nothing, so callers can pass one
// around unconditionally.
package metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Load statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder owns the minefield collectors.
type Recorder struct {
	reg *prometheus.Registry

	queries       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	chainSize     prometheus.Gauge
	samples       prometheus.Counter
	loads         *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minefield_queries_total",
			Help: "Total number of queries answered, labelled by operation.",
		}, []string{"op"}),
		queryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "minefield_query_duration_seconds",
			Help:    "Query latency in seconds, labelled by operation.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"op"}),
		chainSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "minefield_chain_size",
			Help: "Number of mines in the most recently computed chain reaction.",
		}),
		samples: f.NewCounter(prometheus.CounterOpts{
			Name: "minefield_samples_total",
			Help: "Total number of Monte Carlo samples drawn.",
		}),
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minefield_loads_total",
			Help: "Total number of minefield loads, labelled by status.",
		}, []string{"status"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.reg
}

// ObserveQuery counts one op and records its latency.
func (r *Recorder) ObserveQuery(op string, d time.Duration) {
	if r == nil {
		return
	}
	r.queries.WithLabelValues(op).Inc()
	r.queryDuration.WithLabelValues(op).Observe(d.Seconds())
}

// Track starts timing op; call the returned func when it completes.
func (r *Recorder) Track(op string) func() {
	start := time.Now()

	return func() { r.ObserveQuery(op, time.Since(start)) }
}

// SetChainSize records the size of the last chain reaction.
func (r *Recorder) SetChainSize(n int) {
	if r == nil {
		return
	}
	r.chainSize.Set(float64(n))
}

// AddSamples counts Monte Carlo samples.
func (r *Recorder) AddSamples(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.samples.Add(float64(n))
}

// LoadDone counts a load attempt by outcome.
func (r *Recorder) LoadDone(err error) {
	if r == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.loads.WithLabelValues(status).Inc()
}

// Snapshot flattens the registry into name{label="value"} keys.
// Histograms contribute _count and _sum entries.
func (r *Recorder) Snapshot() (map[string]float64, error) {
	if r == nil {
		return map[string]float64{}, nil
	}
	families, err := r.reg.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[name+labels] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[name+labels] = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				out[name+"_count"+labels] = float64(h.GetSampleCount())
				out[name+"_sum"+labels] = h.GetSampleSum()
			}
		}
	}

	return out, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+`="`+p.GetValue()+`"`)
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ",") + "}"
}

package montecarlo

import (
	"errors"
	"math/rand"
)

// DefaultSamples is the sample count used when callers do not choose one.
const DefaultSamples = 1_000_000

// Sentinel errors for area estimation.
var (
	// ErrEmptyNodeSet indicates that no circles were given.
	ErrEmptyNodeSet = errors.New("montecarlo: empty node set")

	// ErrInvalidSampleCount indicates a non-positive sample count.
	ErrInvalidSampleCount = errors.New("montecarlo: sample count must be > 0")

	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("montecarlo: workers must be >= 1")
)

// Option configures an estimation run.
type Option func(*Options)

// Options holds the tunables of EstimateArea.
type Options struct {
	// Seed fixes the random stream. Zero means "seed from the clock".
	Seed int64

	// Workers is the number of goroutines sharing the samples (>= 1).
	Workers int

	// Source, if non-nil, is used directly for a sequential run and takes
	// precedence over Seed. It is ignored when Workers > 1.
	Source *rand.Rand
}

// DefaultOptions returns a clock-seeded, single-worker configuration.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: 1,
		Source:  nil,
	}
}

// WithSeed returns an Option fixing the random seed. A zero seed keeps
// the clock-seeded default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers returns an Option splitting the samples across k goroutines.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// WithSource returns an Option injecting a caller-owned random source.
// A *rand.Rand is not goroutine-safe; do not share it across runs in flight.
func WithSource(r *rand.Rand) Option {
	return func(o *Options) {
		o.Source = r
	}
}

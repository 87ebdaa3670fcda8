package reiter

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Option[Item any] = func(*config[Item])

// WithChunkSize sets the allocation granularity of the cache.
//
// [Seq] grows its cache in address-stable blocks of size items each. [ValueSeq]
// uses size as the initial capacity of its cache. The default is 64.
func WithChunkSize[Item any](size int) Option[Item] {
	if size < 1 {
		panic("chunk size can't be < 1")
	}
	return func(c *config[Item]) {
		c.chunkSize = size
	}
}

// WithPrometheus registers the adaptor's metrics with registerer under the
// provided namespace and subsystem. If registerer is nil, the metrics are
// still collected but not registered anywhere.
func WithPrometheus[Item any](
	registerer prometheus.Registerer,
	namespace, subsystem string,
) Option[Item] {
	return func(c *config[Item]) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config[Item any] struct {
	chunkSize int
	metrics   *metrics
}

func newConfig[Item any](options ...Option[Item]) *config[Item] {
	options = append([]Option[Item]{
		WithChunkSize[Item](64),
		WithPrometheus[Item](nil, "reiter", ""),
	}, options...)

	cfg := config[Item]{}
	for _, opt := range options {
		opt(&cfg)
	}

	return &cfg
}

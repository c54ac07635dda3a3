package searcher

import "factorx/metrics"

type Option func(s *search)

// WithCollector records node, leaf and depth counts into collector. The
// search starts the collector; the caller completes it.
func WithCollector(collector metrics.Collector) Option {
	return func(s *search) {
		if collector != nil {
			s.collector = collector
		}
	}
}

// WithProgressEvery logs a debug progress line every n leaves.
func WithProgressEvery(n int) Option {
	return func(s *search) {
		if n > 0 {
			s.progressEvery = n
		}
	}
}

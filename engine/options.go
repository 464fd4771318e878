package engine

import "github.com/rs/zerolog"

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers splits the root moves across n goroutines, each searching its
// own copy of the position. Values below 2 keep the search serial.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithLogger sets the logger that receives one summary line per search.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) {
		s.log = l
	}
}

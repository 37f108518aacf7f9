package preferences

import (
	"time"

	"github.com/bethropolis/dir-printer/internal/utils"
)

// Option configures a Store
type Option func(*Store)

func WithLogger(logger utils.Logger) Option {
	return func(s *Store) {
		s.logger = utils.LoggerOrNoop(logger)
	}
}

// WithClock replaces time.Now for timestamps and backup names.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

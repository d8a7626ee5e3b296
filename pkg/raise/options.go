package raise

import "time"

const (
	// DateKey is the metadata key holding the raise timestamp.
	DateKey = "Date"
	// DefaultDateLayout formats the DateKey value unless WithDateLayout is used.
	DefaultDateLayout = time.RFC3339Nano
)

type settings struct {
	clock      func() time.Time
	dateLayout string
}

// Option configures a chain root created with Using.
type Option func(*settings)

// WithClock sets the time source used to stamp raised errors.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithDateLayout sets the time.Format layout of the DateKey value.
func WithDateLayout(layout string) Option {
	return func(s *settings) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

func newSettings(opts ...Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *settings) now() time.Time {
	if s == nil || s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

func (s *settings) layout() string {
	if s == nil || s.dateLayout == "" {
		return DefaultDateLayout
	}
	return s.dateLayout
}

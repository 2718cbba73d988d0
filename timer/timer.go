// Package timer reports the time spent in a scope:
//
//	defer timer.New(timer.WithLabel("rebuild index"), timer.PrintOnStop()).Stop()
package timer

import (
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedUnit = errors.New("unsupported duration unit")

const DefaultUnit = time.Millisecond

var log logrus.FieldLogger = logrus.New()

var units = []struct {
	unit    time.Duration
	name    string
	aliases []string
}{
	{time.Nanosecond, "nanoseconds", []string{"ns", "nanosecond"}},
	{time.Microsecond, "microseconds", []string{"us", "µs", "microsecond"}},
	{time.Millisecond, "milliseconds", []string{"ms", "millisecond"}},
	{time.Second, "seconds", []string{"s", "sec", "second"}},
	{time.Minute, "minutes", []string{"m", "min", "minute"}},
	{time.Hour, "hours", []string{"h", "hour"}},
}

// UnitName returns a human readable plural name of unit.
// Days and longer are not supported.
func UnitName(unit time.Duration) string {
	for _, u := range units {
		if u.unit == unit {
			return u.name
		}
	}
	return "unknown or not supported duration"
}

// ParseUnit is the reverse of UnitName, it also accepts
// the short forms used by time.ParseDuration
func ParseUnit(name string) (time.Duration, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, u := range units {
		if u.name == name {
			return u.unit, nil
		}
		for _, alias := range u.aliases {
			if alias == name {
				return u.unit, nil
			}
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedUnit, "could not parse %q", name)
}

type (
	config struct {
		label       string
		unit        time.Duration
		printOnStop bool
		logger      logrus.FieldLogger
		clock       clockwork.Clock
	}

	Option func(cfg *config)
)

func WithLabel(label string) Option {
	return func(cfg *config) {
		cfg.label = label
	}
}

// WithUnit sets the unit used by Elapsed and Stop, milliseconds by default.
// Non positive units fall back to nanoseconds.
func WithUnit(unit time.Duration) Option {
	return func(cfg *config) {
		cfg.unit = unit
	}
}

func PrintOnStop() Option {
	return func(cfg *config) {
		cfg.printOnStop = true
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(cfg *config) {
		cfg.clock = clock
	}
}

// Scoped measures time since its creation
type Scoped struct {
	cfg     config
	start   time.Time
	stopped bool
}

func New(options ...Option) *Scoped {
	cfg := config{
		unit:   DefaultUnit,
		logger: log,
		clock:  clockwork.NewRealClock(),
	}

	for _, o := range options {
		o(&cfg)
	}

	return &Scoped{
		cfg:   cfg,
		start: cfg.clock.Now(),
	}
}

// Elapsed returns the number of whole configured units passed since New
func (s *Scoped) Elapsed() int64 {
	return s.ElapsedIn(s.cfg.unit)
}

// ElapsedIn returns the number of whole units passed since New
func (s *Scoped) ElapsedIn(unit time.Duration) int64 {
	if unit <= 0 {
		unit = time.Nanosecond
	}
	return int64(s.cfg.clock.Now().Sub(s.start) / unit)
}

// Stop reports the elapsed time once if the timer was created with PrintOnStop.
// Subsequent calls do nothing.
func (s *Scoped) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true

	if !s.cfg.printOnStop {
		return
	}

	unit := s.cfg.unit
	if unit <= 0 {
		unit = time.Nanosecond
	}

	logger := s.cfg.logger
	if s.cfg.label != "" {
		logger = logger.WithField("label", s.cfg.label)
	}

	logger.Infof("Elapsed: %d %s", s.ElapsedIn(unit), UnitName(unit))
}

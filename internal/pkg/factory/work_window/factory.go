package work_window

import (
	"time"

	"logistics/internal/entities"
	"logistics/internal/pkg/config"
)

type WorkWindowFactory struct {
	workDayStart config.TimeOfDay
	workDayEnd   config.TimeOfDay
	location     *time.Location
	now          func() time.Time
}

type Option func(*WorkWindowFactory)

// WithClock подменяет источник текущего времени, используется в тестах.
func WithClock(now func() time.Time) Option {
	return func(f *WorkWindowFactory) {
		f.now = now
	}
}

func New(cfg *config.Pickup, opts ...Option) *WorkWindowFactory {
	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	f := &WorkWindowFactory{
		workDayStart: cfg.WorkDayStart,
		workDayEnd:   cfg.WorkDayEnd,
		location:     location,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *WorkWindowFactory) Now() time.Time {
	return f.now().In(f.location)
}

func (f *WorkWindowFactory) Location() *time.Location {
	return f.location
}

// CalculateWindow строит границы суток и рабочего окна для дня,
// в который попадает baseTime. Конец суток включительный.
func (f *WorkWindowFactory) CalculateWindow(baseTime time.Time) entities.WorkWindow {
	year, month, day := baseTime.In(f.location).Date()

	return entities.WorkWindow{
		DayStart:  time.Date(year, month, day, 0, 0, 0, 0, f.location),
		DayEnd:    time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), f.location),
		WorkStart: f.at(year, month, day, f.workDayStart),
		WorkEnd:   f.at(year, month, day, f.workDayEnd),
	}
}

func (f *WorkWindowFactory) at(year int, month time.Month, day int, t config.TimeOfDay) time.Time {
	return time.Date(year, month, day, t.Hour, t.Minute, t.Second, 0, f.location)
}

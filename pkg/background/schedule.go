package background

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseSchedule разбирает стандартное 5-польное cron-выражение ("0 1 * * *")
// или дескриптор ("@every 30s", "@daily").
func ParseSchedule(expr string) (cron.Schedule, error) {
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse cron expression %q: %w", expr, err)
	}
	return schedule, nil
}

// Every - расписание с постоянным интервалом без округления до секунды.
type Every time.Duration

func (e Every) Next(t time.Time) time.Time {
	return t.Add(time.Duration(e))
}

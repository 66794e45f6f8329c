// Package tz owns the fixed-offset local zone used for reservation timestamps
// and report date grouping.
package tz

import (
	"errors"
	"strings"
	"time"

	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/config"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type Policy struct {
	loc    *time.Location
	offset int
}

func NewPolicy(cfg config.ReservationConfig) *Policy {
	return &Policy{
		loc:    time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset),
		offset: cfg.TimeZoneOffset,
	}
}

func (p *Policy) Location() *time.Location {
	return p.loc
}

// OffsetSeconds is the zone offset east of UTC.
func (p *Policy) OffsetSeconds() int {
	return p.offset
}

// Normalize expresses an instant in the local zone. For a UTC input this is the
// wall clock shifted by the offset (15:00Z -> 10:00-05:00).
func (p *Policy) Normalize(t time.Time) time.Time {
	return t.In(p.loc)
}

func (p *Policy) Now(c clock.Clock) time.Time {
	return p.Normalize(c.Now())
}

// ParseNaive strips a trailing Z and parses the remaining wall clock as UTC.
func (p *Policy) ParseNaive(s string) (time.Time, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidTimestamp
}

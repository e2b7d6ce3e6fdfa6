package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type MatchMode int

const (
	// MatchLoose treats a candidate as occupied when any booking shares its
	// hour and any booking, not necessarily the same one, shares its minute.
	// With bookings at 09:00 and 14:30 the 09:30 slot is reported occupied.
	MatchLoose MatchMode = iota

	// MatchExact requires a single booking with both the hour and the minute.
	MatchExact
)

func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "", "loose":
		return MatchLoose, nil
	case "exact":
		return MatchExact, nil
	}
	return MatchLoose, fmt.Errorf("unknown slot match mode %q", s)
}

func (m MatchMode) String() string {
	if m == MatchExact {
		return "exact"
	}
	return "loose"
}

type Calculator struct {
	Candidates []string
	Match      MatchMode
}

func NewCalculator(match MatchMode) *Calculator {
	return &Calculator{
		Candidates: CandidateTimes(),
		Match:      match,
	}
}

// Available runs AvailableTimes over the calculator's candidates.
func (c *Calculator) Available(selectedDay time.Time, booked []time.Time, now time.Time) []string {
	return AvailableTimes(c.Candidates, selectedDay, booked, now, c.Match)
}

// AvailableTimes returns the candidates, in order, that are neither in the
// past (only when selectedDay is today) nor occupied by a booking under the
// given match mode. A zero selectedDay means no day was chosen and yields no
// times.
func AvailableTimes(
	candidates []string,
	selectedDay time.Time,
	booked []time.Time,
	now time.Time,
	match MatchMode,
) []string {
	out := []string{}
	if selectedDay.IsZero() {
		return out
	}

	loc := selectedDay.Location()
	isToday := timezone.SameDate(selectedDay, now.In(loc))

	slots := make([]slot, 0, len(booked))
	for _, b := range booked {
		b = b.In(loc)
		slots = append(slots, slot{hour: b.Hour(), minute: b.Minute()})
	}

	for _, candidate := range candidates {
		s, ok := parseSlot(candidate)
		if !ok {
			continue
		}

		if isToday {
			at := time.Date(
				selectedDay.Year(), selectedDay.Month(), selectedDay.Day(),
				s.hour, s.minute, 0, 0,
				loc,
			)
			if !at.After(now) {
				continue
			}
		}

		if occupied(match, s, slots) {
			continue
		}

		out = append(out, candidate)
	}

	return out
}

func occupied(match MatchMode, s slot, booked []slot) bool {
	if match == MatchExact {
		for _, b := range booked {
			if b == s {
				return true
			}
		}
		return false
	}

	hourTaken, minuteTaken := false, false
	for _, b := range booked {
		if b.hour == s.hour {
			hourTaken = true
		}
		if b.minute == s.minute {
			minuteTaken = true
		}
	}
	return hourTaken && minuteTaken
}

type slot struct {
	hour   int
	minute int
}

func parseSlot(hm string) (slot, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return slot{}, false
	}
	return slot{hour: t.Hour(), minute: t.Minute()}, true
}

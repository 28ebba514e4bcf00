package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindwell/internal/repository"
	"github.com/limbo/mindwell/pkg/entity"
)

// civilDay is a calendar date stripped of zone and time of day.
type civilDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time, loc *time.Location) civilDay {
	y, m, d := t.In(loc).Date()
	return civilDay{year: y, month: m, day: d}
}

// daysBetween returns b - a in whole calendar days. UTC midnights keep DST out of it.
func daysBetween(a, b civilDay) int {
	ta := time.Date(a.year, a.month, a.day, 0, 0, 0, 0, time.UTC)
	tb := time.Date(b.year, b.month, b.day, 0, 0, 0, 0, time.UTC)
	return int(tb.Sub(ta).Hours() / 24)
}

// distinctDays normalizes times to calendar days in loc, sorted ascending without duplicates.
func distinctDays(times []time.Time, loc *time.Location) []civilDay {
	days := make([]civilDay, 0, len(times))
	for _, t := range times {
		days = append(days, dayOf(t, loc))
	}
	slices.SortFunc(days, func(a, b civilDay) int {
		return daysBetween(b, a)
	})
	return slices.Compact(days)
}

// ComputeStreaks derives current and longest daily streaks from completion times.
// A streak whose last day is yesterday is still current. Several completions on one
// day count once, and the order of times does not matter.
func ComputeStreaks(times []time.Time, now time.Time, loc *time.Location) entity.Streaks {
	if loc == nil {
		loc = time.Local
	}
	return streaksFromDays(distinctDays(times, loc), dayOf(now, loc))
}

// streaksFromDays expects days sorted ascending without duplicates.
func streaksFromDays(days []civilDay, today civilDay) entity.Streaks {
	if len(days) == 0 {
		return entity.Streaks{}
	}

	var current int
	last := len(days) - 1
	if daysBetween(days[last], today) <= 1 {
		current = 1
		for i := last; i > 0; i-- {
			if daysBetween(days[i-1], days[i]) != 1 {
				break
			}
			current++
		}
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	return entity.Streaks{
		Current: current,
		Longest: max(longest, current),
	}
}

type StreakCalculator struct {
	elementsRepo repository.ElementsRepositoryI
	loc          *time.Location
	now          func() time.Time
}

// NewStreakCalculator buckets completions into days of loc. Nil loc means time.Local.
func NewStreakCalculator(elementsRepo repository.ElementsRepositoryI, loc *time.Location) *StreakCalculator {
	if elementsRepo == nil {
		panic("on streak calculator provided nil elements repo")
	}
	if loc == nil {
		loc = time.Local
	}
	return &StreakCalculator{
		elementsRepo: elementsRepo,
		loc:          loc,
		now:          time.Now,
	}
}

// WithClock replaces the time source used as "today".
func (sc *StreakCalculator) WithClock(now func() time.Time) *StreakCalculator {
	sc.now = now
	return sc
}

// Compute rescans the whole completion history of uid.
func (sc *StreakCalculator) Compute(ctx context.Context, uid uuid.UUID) (entity.Streaks, error) {
	streaks, _, err := sc.computeWithLastDay(ctx, uid)
	return streaks, err
}

// computeWithLastDay also returns the latest completion day in loc as a UTC midnight, nil without completions.
func (sc *StreakCalculator) computeWithLastDay(ctx context.Context, uid uuid.UUID) (entity.Streaks, *time.Time, error) {
	times, err := sc.elementsRepo.CompletionTimesByUser(ctx, uid)
	if err != nil {
		return entity.Streaks{}, nil, errors.New("repository error: " + err.Error())
	}
	days := distinctDays(times, sc.loc)
	streaks := streaksFromDays(days, dayOf(sc.now(), sc.loc))
	if len(days) == 0 {
		return streaks, nil, nil
	}
	d := days[len(days)-1]
	date := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
	return streaks, &date, nil
}

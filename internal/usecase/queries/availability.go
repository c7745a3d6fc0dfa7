package queries

import (
	"context"
	"sort"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"
)

var (
	ErrInvalidWindow           = errs.New("invalid time window")
	ErrAvailabilityCheckFailed = errs.New("availability check failed")
)

// ConflictReader reads current persisted state; every availability check
// re-queries the store so verdicts never act on stale snapshots.
type ConflictReader interface {
	FindOverlapping(ctx context.Context, start, end time.Time) ([]*ReservationView, error)
}

// Verdict is the result of one availability check. Conflicts is non-empty
// only when Available is false; alternatives are populated only when a
// conflict was found, and each is nil when no free slot exists within the
// search horizon.
type Verdict struct {
	Available    bool
	OutsideHours bool
	Conflicts    []*ReservationView
	Alternative1 *time.Time
	Alternative2 *time.Time
}

type AvailabilityQueries interface {
	Check(ctx context.Context, start, end time.Time) (*Verdict, error)
}

type availabilityQueriesImpl struct {
	conflicts   ConflictReader
	hours       schedule.OperatingHours
	increment   time.Duration
	duration    time.Duration
	horizonDays int
}

func NewAvailabilityQueries(conflicts ConflictReader, cfg config.RestaurantConfig) (AvailabilityQueries, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid restaurant timezone")
	}
	hours, err := schedule.NewOperatingHours(cfg.OpenHour, cfg.CloseHour, location)
	if err != nil {
		return nil, errs.Wrap(err, "invalid operating hours")
	}
	increment := cfg.SlotIncrement
	if increment <= 0 {
		increment = reservation.SlotIncrement
	}
	duration := cfg.ReservationDuration
	if duration <= 0 {
		duration = reservation.Duration
	}
	horizon := cfg.SearchHorizonDays
	if horizon <= 0 {
		horizon = 14
	}
	return &availabilityQueriesImpl{
		conflicts:   conflicts,
		hours:       hours,
		increment:   increment,
		duration:    duration,
		horizonDays: horizon,
	}, nil
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, start, end time.Time) (*Verdict, error) {
	window, err := schedule.NewWindow(start, end)
	if err != nil {
		return nil, ErrInvalidWindow
	}

	// Requests outside operating hours are answered immediately; no point
	// proposing alternatives against hours the request can never satisfy.
	if !q.hours.Contains(window.Start()) {
		return &Verdict{Available: false, OutsideHours: true}, nil
	}

	conflicts, err := q.conflicts.FindOverlapping(ctx, window.Start(), window.End())
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityCheckFailed)
	}
	if len(conflicts) == 0 {
		return &Verdict{Available: true}, nil
	}

	verdict := &Verdict{Available: false, Conflicts: conflicts}

	// The two searches are read-only and independent; run them concurrently
	// and await both. A store failure in either fails the whole check.
	type altResult struct {
		slot *time.Time
		err  error
	}
	nearestCh := make(chan altResult, 1)
	sameTimeCh := make(chan altResult, 1)

	go func() {
		slot, searchErr := q.nearestFreeSlot(ctx, window.Start())
		nearestCh <- altResult{slot: slot, err: searchErr}
	}()
	go func() {
		slot, searchErr := q.sameTimeLaterDay(ctx, window.Start())
		sameTimeCh <- altResult{slot: slot, err: searchErr}
	}()

	nearest := <-nearestCh
	sameTime := <-sameTimeCh
	if nearest.err != nil {
		return nil, errs.Mark(nearest.err, ErrAvailabilityCheckFailed)
	}
	if sameTime.err != nil {
		return nil, errs.Mark(sameTime.err, ErrAvailabilityCheckFailed)
	}

	verdict.Alternative1 = nearest.slot
	verdict.Alternative2 = sameTime.slot
	return verdict, nil
}

// nearestFreeSlot scans every valid slot start across the search horizon,
// ranked by absolute distance from the requested start (ties prefer the later
// slot), and returns the first one with no conflicting reservation.
func (q *availabilityQueriesImpl) nearestFreeSlot(ctx context.Context, requested time.Time) (*time.Time, error) {
	var candidates []time.Time
	for day := 0; day < q.horizonDays; day++ {
		dayStart := schedule.SameWallClock(requested, day, q.hours.Location())
		candidates = append(candidates, schedule.SlotStarts(dayStart, q.hours, q.increment, q.duration)...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di := absDuration(candidates[i].Sub(requested))
		dj := absDuration(candidates[j].Sub(requested))
		if di == dj {
			return candidates[i].After(candidates[j])
		}
		return di < dj
	})

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		conflicts, err := q.conflicts.FindOverlapping(ctx, candidate, candidate.Add(q.duration))
		if err != nil {
			return nil, err
		}
		if len(conflicts) == 0 {
			slot := candidate
			return &slot, nil
		}
	}
	return nil, nil
}

// sameTimeLaterDay tries the requested wall-clock time on each following day;
// the first day whose slot is within hours and conflict-free wins.
func (q *availabilityQueriesImpl) sameTimeLaterDay(ctx context.Context, requested time.Time) (*time.Time, error) {
	for day := 1; day <= q.horizonDays; day++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidate := schedule.SameWallClock(requested, day, q.hours.Location())
		if !q.hours.Contains(candidate) {
			continue
		}
		conflicts, err := q.conflicts.FindOverlapping(ctx, candidate, candidate.Add(q.duration))
		if err != nil {
			return nil, err
		}
		if len(conflicts) == 0 {
			slot := candidate
			return &slot, nil
		}
	}
	return nil, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

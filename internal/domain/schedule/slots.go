package schedule

import "time"

// SlotStarts returns every slot start on the day containing day such that
// [start, start+duration) lies entirely within hours, stepping by step.
// Pure function of its inputs; results are ordered ascending.
func SlotStarts(day time.Time, hours OperatingHours, step, duration time.Duration) []time.Time {
	if step <= 0 || duration <= 0 {
		return nil
	}

	opening := hours.OpeningOn(day)
	closing := hours.ClosingOn(day)

	var starts []time.Time
	for t := opening; !t.Add(duration).After(closing); t = t.Add(step) {
		starts = append(starts, t)
	}
	return starts
}

package response

import (
	"fmt"
	"time"

	"tablebook/internal/domain/schedule"
	"tablebook/internal/usecase/queries"
)

type CheckAvailabilityResponse struct {
	Available               bool                   `json:"available"`
	ConflictingReservations []*ReservationResponse `json:"conflicting_reservations,omitempty"`
	AlternativeDateTime1    *string                `json:"alternative_datetime_1,omitempty"`
	AlternativeDateTime2    *string                `json:"alternative_datetime_2,omitempty"`
	Error                   string                 `json:"error,omitempty"`
}

func FromVerdict(verdict *queries.Verdict, hours schedule.OperatingHours, requested time.Time) *CheckAvailabilityResponse {
	if verdict.OutsideHours {
		return &CheckAvailabilityResponse{
			Available: false,
			Error:     OutsideHoursMessage(hours, requested),
		}
	}

	resp := &CheckAvailabilityResponse{
		Available:               verdict.Available,
		ConflictingReservations: fromViews(verdict.Conflicts),
		AlternativeDateTime1:    formatInstant(verdict.Alternative1),
		AlternativeDateTime2:    formatInstant(verdict.Alternative2),
	}
	return resp
}

// OutsideHoursMessage renders e.g. "Requested time is outside restaurant
// hours (11:00 AM - 11:00 PM EDT)". The zone abbreviation follows whatever
// was in force at the requested instant.
func OutsideHoursMessage(hours schedule.OperatingHours, requested time.Time) string {
	abbrev := requested.In(hours.Location()).Format("MST")
	return fmt.Sprintf("Requested time is outside restaurant hours (%s - %s %s)",
		formatHour(hours.OpenHour()), formatHour(hours.CloseHour()), abbrev)
}

func formatHour(hour int) string {
	t := time.Date(2000, 1, 1, hour%24, 0, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func fromViews(views []*queries.ReservationView) []*ReservationResponse {
	if len(views) == 0 {
		return nil
	}
	result := make([]*ReservationResponse, len(views))
	for i, view := range views {
		result[i] = FromReservationView(view)
	}
	return result
}

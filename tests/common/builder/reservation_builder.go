//go:build unit || e2e

package builder

import (
	"time"

	domreservation "tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	FullName        string
	PhoneNumber     string
	Start           time.Time
	End             time.Time
	Guests          int
	SpecialOccasion *string
	ChefsTable      bool
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	// 23:00 UTC is 19:00 in New York; well inside a June service day.
	start := time.Date(2025, 6, 5, 23, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		FullName:    "Ada Lovelace",
		PhoneNumber: "+1-555-0142",
		Start:       start,
		End:         start.Add(domreservation.Duration),
		Guests:      2,
		CreatedAt:   time.Now(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	r.Start = start
	r.End = end
	return r
}

func (r *ReservationBuilder) WithGuests(guests int) *ReservationBuilder {
	r.Guests = guests
	return r
}

func (r *ReservationBuilder) WithOccasion(occasion string) *ReservationBuilder {
	r.SpecialOccasion = &occasion
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	window, err := schedule.NewWindow(r.Start, r.End)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(
		r.FullName, r.PhoneNumber, window, r.Guests, r.SpecialOccasion, r.ChefsTable,
	)
}

func (r *ReservationBuilder) BuildParams() commands.BookParams {
	return commands.BookParams{
		Start:           r.Start,
		End:             r.End,
		FullName:        r.FullName,
		PhoneNumber:     r.PhoneNumber,
		Guests:          r.Guests,
		SpecialOccasion: r.SpecialOccasion,
		ChefsTable:      r.ChefsTable,
	}
}

func (r *ReservationBuilder) BuildBookRequestDTO() reqdto.BookReservationRequest {
	guests := r.Guests
	return reqdto.BookReservationRequest{
		StartDateTime:   r.Start.Format(time.RFC3339),
		EndDateTime:     r.End.Format(time.RFC3339),
		FullName:        r.FullName,
		PhoneNumber:     r.PhoneNumber,
		Guests:          &guests,
		SpecialOccasion: r.SpecialOccasion,
		ChefsTable:      r.ChefsTable,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              uuid.New(),
		FullName:        r.FullName,
		PhoneNumber:     r.PhoneNumber,
		StartDateTime:   r.Start,
		EndDateTime:     r.End,
		Guests:          int32(r.Guests),
		SpecialOccasion: r.SpecialOccasion,
		ChefsTable:      r.ChefsTable,
		CreatedAt:       r.CreatedAt,
	}
}

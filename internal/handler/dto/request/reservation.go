package request

import (
	"strings"
	"time"

	"tablebook/internal/usecase/commands"
)

type BookReservationRequest struct {
	StartDateTime   string  `json:"start_date_time"`
	EndDateTime     string  `json:"end_date_time"`
	FullName        string  `json:"full_name"`
	PhoneNumber     string  `json:"phone_number"`
	Guests          *int    `json:"guests"`
	SpecialOccasion *string `json:"special_occasion,omitempty"`
	ChefsTable      bool    `json:"chefs_table,omitempty"`
}

func DecodeBookReservation(body []byte) (BookReservationRequest, error) {
	var req BookReservationRequest
	if err := unwrap(body, &req); err != nil {
		return BookReservationRequest{}, err
	}
	return req, nil
}

// MissingFields lists every absent required field, in request order, for the
// 400 response body.
func (r BookReservationRequest) MissingFields() []string {
	var missing []string
	if r.StartDateTime == "" {
		missing = append(missing, "start_date_time")
	}
	if r.EndDateTime == "" {
		missing = append(missing, "end_date_time")
	}
	if strings.TrimSpace(r.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if r.Guests == nil {
		missing = append(missing, "guests")
	}
	return missing
}

func (r BookReservationRequest) ToParams() (commands.BookParams, error) {
	start, err := time.Parse(time.RFC3339, r.StartDateTime)
	if err != nil {
		return commands.BookParams{}, ErrUnparsableTime
	}
	end, err := time.Parse(time.RFC3339, r.EndDateTime)
	if err != nil {
		return commands.BookParams{}, ErrUnparsableTime
	}

	guests := 0
	if r.Guests != nil {
		guests = *r.Guests
	}

	return commands.BookParams{
		Start:           start,
		End:             end,
		FullName:        r.FullName,
		PhoneNumber:     r.PhoneNumber,
		Guests:          guests,
		SpecialOccasion: r.SpecialOccasion,
		ChefsTable:      r.ChefsTable,
	}, nil
}

package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidGuestCount = errors.New("guest count must be between 1 and 20")
	ErrInvalidDuration   = errors.New("reservation must be exactly the standard duration")
)

const (
	// Duration is the fixed length of every reservation booked through the
	// service.
	Duration = 2 * time.Hour

	// SlotIncrement is the boundary slots start on.
	SlotIncrement = 30 * time.Minute

	MinGuests = 1
	MaxGuests = 20
)

type Reservation struct {
	id              uuid.UUID
	fullName        string
	phoneNumber     string
	window          schedule.Window
	guests          int
	specialOccasion *string
	chefsTable      bool
	createdAt       time.Time
}

func NewReservation(
	fullName string,
	phoneNumber string,
	window schedule.Window,
	guests int,
	specialOccasion *string,
	chefsTable bool,
) (*Reservation, error) {
	if strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("%w: full_name", ErrMissingField)
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, fmt.Errorf("%w: phone_number", ErrMissingField)
	}
	if guests < MinGuests || guests > MaxGuests {
		return nil, ErrInvalidGuestCount
	}
	if window.Duration() != Duration {
		return nil, ErrInvalidDuration
	}

	if specialOccasion != nil {
		trimmed := strings.TrimSpace(*specialOccasion)
		if trimmed == "" {
			specialOccasion = nil
		} else {
			specialOccasion = &trimmed
		}
	}

	return &Reservation{
		id:              uuid.New(),
		fullName:        strings.TrimSpace(fullName),
		phoneNumber:     strings.TrimSpace(phoneNumber),
		window:          window,
		guests:          guests,
		specialOccasion: specialOccasion,
		chefsTable:      chefsTable,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	fullName string,
	phoneNumber string,
	window schedule.Window,
	guests int,
	specialOccasion *string,
	chefsTable bool,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		fullName:        fullName,
		phoneNumber:     phoneNumber,
		window:          window,
		guests:          guests,
		specialOccasion: specialOccasion,
		chefsTable:      chefsTable,
		createdAt:       createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) FullName() string         { return r.fullName }
func (r *Reservation) PhoneNumber() string      { return r.phoneNumber }
func (r *Reservation) Window() schedule.Window  { return r.window }
func (r *Reservation) Guests() int              { return r.guests }
func (r *Reservation) SpecialOccasion() *string { return r.specialOccasion }
func (r *Reservation) ChefsTable() bool         { return r.chefsTable }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }

package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is the read model handed to handlers and the change feed.
// Field names follow the persisted storage contract.
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	PhoneNumber     string    `json:"phone_number"`
	StartDateTime   time.Time `json:"start_date_time"`
	EndDateTime     time.Time `json:"end_date_time"`
	Guests          int32     `json:"guests"`
	SpecialOccasion *string   `json:"special_occasion"`
	ChefsTable      bool      `json:"chefs_table"`
	CreatedAt       time.Time `json:"created_at"`
}

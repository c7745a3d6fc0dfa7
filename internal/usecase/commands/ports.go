package commands

import (
	"context"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	// Create persists the reservation and returns the stored row, including
	// the database-assigned creation timestamp.
	Create(ctx context.Context, res *reservation.Reservation) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChangeFeedPublisher pushes insert/delete events to dashboard subscribers.
// Delivery is best-effort and at-least-once; subscribers reconcile by
// re-fetching full state after a reconnect.
type ChangeFeedPublisher interface {
	PublishInserted(ctx context.Context, view *queries.ReservationView) error
	PublishDeleted(ctx context.Context, id uuid.UUID) error
}

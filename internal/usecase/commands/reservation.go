package commands

import (
	"context"
	"log/slog"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationConflict     = errs.New("reservation conflict")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookParams struct {
	Start           time.Time
	End             time.Time
	FullName        string
	PhoneNumber     string
	Guests          int
	SpecialOccasion *string
	ChefsTable      bool
}

type ReservationCommands interface {
	Book(ctx context.Context, params BookParams) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	repo ReservationRepository
	feed ChangeFeedPublisher
}

func NewReservationCommands(repo ReservationRepository, feed ChangeFeedPublisher) ReservationCommands {
	return &reservationCommandsImpl{repo: repo, feed: feed}
}

// Book validates and persists a reservation for a slot the caller has already
// confirmed available. Overlap protection is enforced by the store's exclusion
// constraint, so two clients racing for the same slot cannot both win; the
// loser gets ErrReservationConflict.
func (c *reservationCommandsImpl) Book(ctx context.Context, params BookParams) (*queries.ReservationView, error) {
	window, err := schedule.NewWindow(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := reservation.NewReservation(
		params.FullName,
		params.PhoneNumber,
		window,
		params.Guests,
		params.SpecialOccasion,
		params.ChefsTable,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	view, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if feedErr := c.feed.PublishInserted(ctx, view); feedErr != nil {
		// Feed delivery is best-effort; the booking itself already committed.
		slog.Warn("failed to publish reservation insert event",
			"reservation_id", view.ID, "error", feedErr)
	}

	return view, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if feedErr := c.feed.PublishDeleted(ctx, id); feedErr != nil {
		slog.Warn("failed to publish reservation delete event",
			"reservation_id", id, "error", feedErr)
	}

	return nil
}

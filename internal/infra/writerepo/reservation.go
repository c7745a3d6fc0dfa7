package writerepo

import (
	"context"
	"errors"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts the reservation and returns the stored row. The overlap
// exclusion constraint turns a lost booking race into KindConflict instead of
// a silent double-booking.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO reservations (id, full_name, phone_number, start_at, end_at, guests, special_occasion, chefs_table)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, full_name, phone_number, start_at, end_at, guests, special_occasion, chefs_table, created_at
	`,
		res.ID(),
		res.FullName(),
		res.PhoneNumber(),
		res.Window().Start(),
		res.Window().End(),
		res.Guests(),
		res.SpecialOccasion(),
		res.ChefsTable(),
	)

	var view queries.ReservationView
	err := row.Scan(
		&view.ID,
		&view.FullName,
		&view.PhoneNumber,
		&view.StartDateTime,
		&view.EndDateTime,
		&view.Guests,
		&view.SpecialOccasion,
		&view.ChefsTable,
		&view.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				return nil, infra.WrapRepoErr("reservation overlaps an existing booking", err, infra.KindConflict)
			case pgUniqueViolation:
				return nil, infra.WrapRepoErr("duplicate reservation id", err, infra.KindDuplicateKey)
			}
		}
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return &view, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"
	"tablebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Ada Lovelace", actual.FullName())
		assert.Equal(t, "+1-555-0142", actual.PhoneNumber())
		assert.Equal(t, 2, actual.Guests())
		assert.Nil(t, actual.SpecialOccasion())
		assert.False(t, actual.ChefsTable())
		assert.Equal(t, reservation.Duration, actual.Window().Duration())
	})

	t.Run("name and phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty full name",
				mutate: func(b *builder.ReservationBuilder) { b.FullName = "" },
				errIs:  reservation.ErrMissingField,
			},
			{
				name:   "whitespace only full name",
				mutate: func(b *builder.ReservationBuilder) { b.FullName = "   " },
				errIs:  reservation.ErrMissingField,
			},
			{
				name:   "empty phone number",
				mutate: func(b *builder.ReservationBuilder) { b.PhoneNumber = "" },
				errIs:  reservation.ErrMissingField,
			},
			{
				name:   "whitespace only phone number",
				mutate: func(b *builder.ReservationBuilder) { b.PhoneNumber = "\t " },
				errIs:  reservation.ErrMissingField,
			},
		})
	})

	t.Run("guest count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero guests",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = 0 },
				errIs:  reservation.ErrInvalidGuestCount,
			},
			{
				name:   "negative guests",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = -2 },
				errIs:  reservation.ErrInvalidGuestCount,
			},
			{
				name:   "minimum valid guests",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = reservation.MinGuests },
			},
			{
				name:   "maximum valid guests",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = reservation.MaxGuests },
			},
			{
				name:   "above maximum guests",
				mutate: func(b *builder.ReservationBuilder) { b.Guests = reservation.MaxGuests + 1 },
				errIs:  reservation.ErrInvalidGuestCount,
			},
		})
	})

	t.Run("duration validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "too short",
				mutate: func(b *builder.ReservationBuilder) {
					b.End = b.Start.Add(90 * time.Minute)
				},
				errIs: reservation.ErrInvalidDuration,
			},
			{
				name: "too long",
				mutate: func(b *builder.ReservationBuilder) {
					b.End = b.Start.Add(3 * time.Hour)
				},
				errIs: reservation.ErrInvalidDuration,
			},
			{
				name: "exactly the standard duration",
				mutate: func(b *builder.ReservationBuilder) {
					b.End = b.Start.Add(reservation.Duration)
				},
			},
		})
	})

	t.Run("field trimming", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.FullName = "  Grace Hopper  "
				b.PhoneNumber = " +1-555-0199 "
			}).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Grace Hopper", actual.FullName())
		assert.Equal(t, "+1-555-0199", actual.PhoneNumber())
	})

	t.Run("blank special occasion becomes nil", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithOccasion("   ").BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.SpecialOccasion())
	})

	t.Run("special occasion is trimmed", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithOccasion(" anniversary ").BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual.SpecialOccasion())
		assert.Equal(t, "anniversary", *actual.SpecialOccasion())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		first, err1 := builder.NewReservationBuilder().BuildDomain()
		second, err2 := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	start := time.Date(2025, 6, 5, 23, 0, 0, 0, time.UTC)
	window, err := schedule.NewWindow(start, start.Add(reservation.Duration))
	require.NoError(t, err)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	occasion := "birthday"

	actual := reservation.Reconstruct(id, "Ada Lovelace", "+1-555-0142", window, 4, &occasion, true, createdAt)

	assert.Equal(t, id, actual.ID())
	assert.Equal(t, 4, actual.Guests())
	assert.True(t, actual.ChefsTable())
	assert.Equal(t, createdAt, actual.CreatedAt())
	require.NotNil(t, actual.SpecialOccasion())
	assert.Equal(t, "birthday", *actual.SpecialOccasion())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

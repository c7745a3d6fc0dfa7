//go:build unit

package response_test

import (
	"testing"
	"time"

	"tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReservationView(t *testing.T) {
	occasion := "anniversary"
	view := &queries.ReservationView{
		ID:              uuid.New(),
		FullName:        "Ada Lovelace",
		PhoneNumber:     "+1-555-0142",
		StartDateTime:   time.Date(2025, 6, 5, 23, 0, 0, 0, time.UTC),
		EndDateTime:     time.Date(2025, 6, 6, 1, 0, 0, 0, time.UTC),
		Guests:          4,
		SpecialOccasion: &occasion,
		ChefsTable:      true,
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	got := response.FromReservationView(view)

	want := &response.ReservationResponse{
		ID:              view.ID,
		FullName:        view.FullName,
		PhoneNumber:     view.PhoneNumber,
		StartDateTime:   view.StartDateTime,
		EndDateTime:     view.EndDateTime,
		Guests:          view.Guests,
		SpecialOccasion: &occasion,
		ChefsTable:      true,
		CreatedAt:       view.CreatedAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromReservationViews(t *testing.T) {
	views := []*queries.ReservationView{
		{ID: uuid.New(), FullName: "Ada Lovelace"},
		{ID: uuid.New(), FullName: "Grace Hopper"},
	}

	got := response.FromReservationViews(views)
	require.Len(t, got, 2)
	assert.Equal(t, views[0].ID, got[0].ID)
	assert.Equal(t, views[1].ID, got[1].ID)

	assert.Empty(t, response.FromReservationViews(nil))
}

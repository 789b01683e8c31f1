//go:build unit

package booking_test

import (
	"testing"
	"time"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, "Buddy", actual.PetName())
		assert.Equal(t, "Aseo Básico", actual.PlanName())
		assert.Equal(t, "Sucursal Palermo", actual.BranchName())
		assert.Equal(t, "Sat, 15 Jun 2024", actual.DateText())
		assert.Equal(t, "10:00 AM", actual.TimeOfDay())
		assert.Equal(t, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC), actual.AppointmentAt())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("snapshot field validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
			errIs  error
		}{
			{
				name:   "empty pet name",
				mutate: func(b *builder.BookingBuilder) { b.WithPetName("") },
				errIs:  booking.ErrEmptySnapshotField,
			},
			{
				name:   "whitespace plan name",
				mutate: func(b *builder.BookingBuilder) { b.WithPlanName("   ") },
				errIs:  booking.ErrEmptySnapshotField,
			},
			{
				name:   "empty branch name",
				mutate: func(b *builder.BookingBuilder) { b.WithBranchName("") },
				errIs:  booking.ErrEmptySnapshotField,
			},
			{
				name:   "malformed time of day",
				mutate: func(b *builder.BookingBuilder) { b.WithTimeOfDay("half past nine") },
				errIs:  booking.ErrMalformedClockTime,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := builder.NewBookingBuilder()
				tt.mutate(b)
				actual, err := b.BuildDomain()
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, actual)
			})
		}
	})

	t.Run("each booking gets its own id", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		first, err := b.BuildDomain()
		require.NoError(t, err)
		second, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestReconstructBooking(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	appointment := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	actual := booking.ReconstructBooking(id, userID, "Lucy", "Mimo Premium", "Sat, 15 Jun 2024", "10:00 AM", "Sucursal Belgrano", appointment, created)

	assert.Equal(t, id, actual.ID())
	assert.Equal(t, userID, actual.UserID())
	assert.Equal(t, "Lucy", actual.PetName())
	assert.Equal(t, "Mimo Premium", actual.PlanName())
	assert.Equal(t, appointment, actual.AppointmentAt())
	assert.Equal(t, created, actual.CreatedAt())
}

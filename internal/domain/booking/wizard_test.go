//go:build unit

package booking_test

import (
	"testing"
	"time"

	"petcare-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestDeriveStep(t *testing.T) {
	petID := uuid.New()
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	slot := "10:00 AM"
	branch := "b1"

	tests := []struct {
		name     string
		draft    booking.Draft
		expected booking.Step
	}{
		{
			name:     "empty draft stays on first step",
			draft:    booking.Draft{},
			expected: booking.StepPetAndSchedule,
		},
		{
			name:     "date alone does not advance",
			draft:    booking.Draft{Date: &date},
			expected: booking.StepPetAndSchedule,
		},
		{
			name:     "pet without time stays on first step",
			draft:    booking.Draft{PetID: &petID, Date: &date},
			expected: booking.StepPetAndSchedule,
		},
		{
			name:     "time without pet stays on first step",
			draft:    booking.Draft{Date: &date, Time: ptr(slot)},
			expected: booking.StepPetAndSchedule,
		},
		{
			name:     "branch counts for nothing while pet is missing",
			draft:    booking.Draft{Date: &date, Time: ptr(slot), BranchID: ptr(branch)},
			expected: booking.StepPetAndSchedule,
		},
		{
			name:     "pet and time reach the branch step",
			draft:    booking.Draft{PetID: &petID, Date: &date, Time: ptr(slot)},
			expected: booking.StepBranch,
		},
		{
			name:     "pet and time without date still reach the branch step",
			draft:    booking.Draft{PetID: &petID, Time: ptr(slot)},
			expected: booking.StepBranch,
		},
		{
			name:     "all selections reach confirmation",
			draft:    booking.Draft{PetID: &petID, Date: &date, Time: ptr(slot), BranchID: ptr(branch)},
			expected: booking.StepConfirm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, booking.DeriveStep(tt.draft))
		})
	}
}

func TestDraftComplete(t *testing.T) {
	petID := uuid.New()
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	slot := "10:00 AM"
	branch := "b1"

	full := booking.Draft{PetID: &petID, Date: &date, Time: ptr(slot), BranchID: ptr(branch)}
	assert.True(t, full.Complete())

	t.Run("each missing field blocks submission", func(t *testing.T) {
		withoutPet := full
		withoutPet.PetID = nil
		assert.False(t, withoutPet.Complete())

		withoutDate := full
		withoutDate.Date = nil
		assert.False(t, withoutDate.Complete())

		withoutTime := full
		withoutTime.Time = nil
		assert.False(t, withoutTime.Complete())

		withoutBranch := full
		withoutBranch.BranchID = nil
		assert.False(t, withoutBranch.Complete())
	})

	t.Run("a complete draft confirms even though step ignores the date", func(t *testing.T) {
		noDate := full
		noDate.Date = nil
		assert.Equal(t, booking.StepConfirm, booking.DeriveStep(noDate))
		assert.False(t, noDate.Complete())
	})
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "pet_and_schedule", booking.StepPetAndSchedule.String())
	assert.Equal(t, "branch", booking.StepBranch.String())
	assert.Equal(t, "confirm", booking.StepConfirm.String())
	assert.Equal(t, "unknown", booking.Step(9).String())

	assert.True(t, booking.StepConfirm.IsValid())
	assert.False(t, booking.Step(0).IsValid())
	assert.False(t, booking.Step(4).IsValid())
}

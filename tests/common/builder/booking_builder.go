//go:build unit || e2e

package builder

import (
	"time"

	dombooking "petcare-booking/internal/domain/booking"
	reqdto "petcare-booking/internal/handler/dto/request"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/usecase"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID     uuid.UUID
	PetID      uuid.UUID
	PetName    string
	PlanID     string
	PlanName   string
	Date       time.Time
	TimeOfDay  string
	BranchID   string
	BranchName string
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:     uuid.New(),
		PetID:      uuid.New(),
		PetName:    "Buddy",
		PlanID:     "plan1",
		PlanName:   "Aseo Básico",
		Date:       time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		TimeOfDay:  "10:00 AM",
		BranchID:   "b1",
		BranchName: "Sucursal Palermo",
		Now:        time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	clk := clock.NewMockClock(b.Now)
	return dombooking.NewBooking(clk, b.UserID, b.PetName, b.PlanName, b.Date, b.TimeOfDay, b.BranchName)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	petID := b.PetID
	date := b.Date
	timeOfDay := b.TimeOfDay
	branchID := b.BranchID
	return reqdto.CreateBookingRequest{
		PetID:    &petID,
		PlanID:   b.PlanID,
		Date:     &date,
		Time:     &timeOfDay,
		BranchID: &branchID,
	}
}

func (b *BookingBuilder) BuildParams() usecase.SubmitBookingParams {
	petID := b.PetID
	date := b.Date
	timeOfDay := b.TimeOfDay
	branchID := b.BranchID
	return usecase.SubmitBookingParams{
		PetID:    &petID,
		PlanID:   b.PlanID,
		Date:     &date,
		Time:     &timeOfDay,
		BranchID: &branchID,
	}
}

func (b *BookingBuilder) BuildView() *usecase.BookingView {
	appointment := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 10, 0, 0, 0, b.Date.Location())
	return &usecase.BookingView{
		ID:             uuid.New(),
		UserID:         b.UserID,
		PetName:        b.PetName,
		PlanName:       b.PlanName,
		DateText:       b.Date.Format(dombooking.DateDisplayFormat),
		Time:           b.TimeOfDay,
		BranchName:     b.BranchName,
		AppointmentAt:  appointment,
		CreatedAt:      b.Now,
		ReminderStatus: "scheduled",
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithPetID(petID uuid.UUID) *BookingBuilder {
	b.PetID = petID
	return b
}

func (b *BookingBuilder) WithPetName(name string) *BookingBuilder {
	b.PetName = name
	return b
}

func (b *BookingBuilder) WithPlanID(planID string) *BookingBuilder {
	b.PlanID = planID
	return b
}

func (b *BookingBuilder) WithPlanName(name string) *BookingBuilder {
	b.PlanName = name
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimeOfDay(timeOfDay string) *BookingBuilder {
	b.TimeOfDay = timeOfDay
	return b
}

func (b *BookingBuilder) WithBranchID(branchID string) *BookingBuilder {
	b.BranchID = branchID
	return b
}

func (b *BookingBuilder) WithBranchName(name string) *BookingBuilder {
	b.BranchName = name
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

package request

import (
	"time"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/usecase"

	"github.com/google/uuid"
)

// WizardRequest mirrors the client's partial selections; every field may
// be absent while the user is still mid-flow.
type WizardRequest struct {
	PetID    *uuid.UUID `json:"pet_id,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Time     *string    `json:"time,omitempty"`
	BranchID *string    `json:"branch_id,omitempty"`
}

func (r WizardRequest) ToDraft() booking.Draft {
	return booking.Draft{
		PetID:    r.PetID,
		Date:     r.Date,
		Time:     r.Time,
		BranchID: r.BranchID,
	}
}

// CreateBookingRequest keeps the selection fields optional on purpose: an
// incomplete submission must surface as a validation failure from the
// booking flow, not as a bind error.
type CreateBookingRequest struct {
	PetID    *uuid.UUID `json:"pet_id,omitempty"`
	PlanID   string     `json:"plan_id" binding:"required"`
	Date     *time.Time `json:"date,omitempty"`
	Time     *string    `json:"time,omitempty"`
	BranchID *string    `json:"branch_id,omitempty"`
}

func (r CreateBookingRequest) ToParams() usecase.SubmitBookingParams {
	return usecase.SubmitBookingParams{
		PetID:    r.PetID,
		PlanID:   r.PlanID,
		Date:     r.Date,
		Time:     r.Time,
		BranchID: r.BranchID,
	}
}

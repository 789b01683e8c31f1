package response

import (
	"time"

	"petcare-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// BookingResponse is the confirmation hand-off payload: denormalized
// display strings plus the absolute appointment instant.
type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	PetName        string    `json:"petName"`
	PlanName       string    `json:"planName"`
	DateText       string    `json:"date"`
	Time           string    `json:"time"`
	BranchName     string    `json:"branchName"`
	AppointmentAt  time.Time `json:"appointmentTimestamp"`
	CreatedAt      time.Time `json:"createdAt"`
	ReminderStatus string    `json:"reminderStatus"`
}

type WizardResponse struct {
	Step     int    `json:"step"`
	StepName string `json:"stepName"`
	Complete bool   `json:"complete"`
}

func FromBookingView(v *usecase.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingViews(views []*usecase.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}

func FromWizardView(v *usecase.WizardView) *WizardResponse {
	var resp WizardResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

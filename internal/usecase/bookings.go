package usecase

import (
	"context"
	"log/slog"
	"time"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/catalog"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/reminder"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrIncompleteBooking = errs.New("incomplete booking submission")
	ErrPlanNotFound      = errs.New("plan not found")
	ErrBranchNotFound    = errs.New("branch not found")
	ErrUnknownTimeSlot   = errs.New("unknown time slot")
	ErrMalformedTime     = errs.New("malformed appointment time")
)

type BookingStore interface {
	Create(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
}

// ReminderScheduler is the slice of the reminder scheduler the booking
// flow needs: arm on submit, disarm on cancel, report per-booking status.
type ReminderScheduler interface {
	Schedule(req reminder.Request) (reminder.Status, error)
	Cancel(bookingID uuid.UUID)
	Status(bookingID uuid.UUID) reminder.Status
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	PetName        string    `json:"pet_name"`
	PlanName       string    `json:"plan_name"`
	DateText       string    `json:"date_text"`
	Time           string    `json:"time"`
	BranchName     string    `json:"branch_name"`
	AppointmentAt  time.Time `json:"appointment_at"`
	CreatedAt      time.Time `json:"created_at"`
	ReminderStatus string    `json:"reminder_status"`
}

type WizardView struct {
	Step     int    `json:"step"`
	StepName string `json:"step_name"`
	Complete bool   `json:"complete"`
}

// SubmitBookingParams carries the wizard's selections. Optional fields
// stay pointers so an incomplete draft is reported as a validation
// failure instead of being silently zero-filled.
type SubmitBookingParams struct {
	PetID    *uuid.UUID
	PlanID   string
	Date     *time.Time
	Time     *string
	BranchID *string
}

type BookingUseCase interface {
	EvaluateWizard(draft booking.Draft) *WizardView
	SubmitBooking(ctx context.Context, userID uuid.UUID, params SubmitBookingParams) (*BookingView, error)
	GetBooking(ctx context.Context, userID, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	CancelBooking(ctx context.Context, userID, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookings  BookingStore
	pets      PetStore
	catalog   *catalog.Catalog
	scheduler ReminderScheduler
	clock     clock.Clock
}

func NewBookingUseCase(
	bookings BookingStore,
	pets PetStore,
	cat *catalog.Catalog,
	scheduler ReminderScheduler,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings:  bookings,
		pets:      pets,
		catalog:   cat,
		scheduler: scheduler,
		clock:     clock,
	}
}

// EvaluateWizard re-derives the step from whichever selections are filled
// in; nothing about the draft is stored server-side.
func (u *bookingUseCaseImpl) EvaluateWizard(draft booking.Draft) *WizardView {
	step := booking.DeriveStep(draft)
	return &WizardView{
		Step:     int(step),
		StepName: step.String(),
		Complete: draft.Complete(),
	}
}

func (u *bookingUseCaseImpl) SubmitBooking(ctx context.Context, userID uuid.UUID, params SubmitBookingParams) (*BookingView, error) {
	draft := booking.Draft{
		PetID:    params.PetID,
		Date:     params.Date,
		Time:     params.Time,
		BranchID: params.BranchID,
	}
	if !draft.Complete() {
		return nil, ErrIncompleteBooking
	}

	petEntity, err := u.pets.FindByID(ctx, *params.PetID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if petEntity.OwnerID() != userID {
		return nil, ErrPetNotFound
	}

	plan, ok := u.catalog.PlanByID(params.PlanID)
	if !ok {
		return nil, ErrPlanNotFound
	}

	branch, ok := u.catalog.BranchByID(*params.BranchID)
	if !ok {
		return nil, ErrBranchNotFound
	}

	if !u.catalog.HasTimeSlot(*params.Time) {
		return nil, ErrUnknownTimeSlot
	}

	// Snapshot display names as of now; later renames must not rewrite
	// this booking.
	entity, err := booking.NewBooking(u.clock, userID, petEntity.Name(), plan.Name, *params.Date, *params.Time, branch.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedTime)
	}

	if err := u.bookings.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	status, err := u.scheduler.Schedule(reminder.Request{
		BookingID:  entity.ID(),
		Date:       *params.Date,
		TimeOfDay:  *params.Time,
		PetName:    entity.PetName(),
		BranchName: entity.BranchName(),
	})
	if err != nil {
		// The booking stands; the reminder fails closed.
		slog.Warn("reminder not armed", "booking_id", entity.ID(), "error", err.Error())
		status = reminder.StatusNone
	}

	return viewFromBooking(entity, status), nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, userID, id uuid.UUID) (*BookingView, error) {
	entity, err := u.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return viewFromBooking(entity, u.scheduler.Status(id)), nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	entities, err := u.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	views := make([]*BookingView, len(entities))
	for i, b := range entities {
		views[i] = viewFromBooking(b, u.scheduler.Status(b.ID()))
	}
	return views, nil
}

// CancelBooking removes the booking and disarms any reminder already
// armed for it, so a cancelled appointment can never notify.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := u.findOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := u.bookings.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	u.scheduler.Cancel(id)
	return nil
}

func (u *bookingUseCaseImpl) findOwned(ctx context.Context, userID, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if entity.UserID() != userID {
		return nil, ErrBookingNotFound
	}
	return entity, nil
}

func viewFromBooking(b *booking.Booking, status reminder.Status) *BookingView {
	return &BookingView{
		ID:             b.ID(),
		UserID:         b.UserID(),
		PetName:        b.PetName(),
		PlanName:       b.PlanName(),
		DateText:       b.DateText(),
		Time:           b.TimeOfDay(),
		BranchName:     b.BranchName(),
		AppointmentAt:  b.AppointmentAt(),
		CreatedAt:      b.CreatedAt(),
		ReminderStatus: string(status),
	}
}

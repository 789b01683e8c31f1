package booking

import (
	"errors"
	"strings"
	"time"

	"petcare-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptySnapshotField = errors.New("booking snapshot field cannot be empty")
)

// DateDisplayFormat renders the appointment date for the confirmation view.
const DateDisplayFormat = "Mon, 02 Jan 2006"

// Booking is a snapshot taken at confirmation time. Pet, plan and branch
// are stored as display strings on purpose: renaming a pet or a branch
// later must not rewrite booking history. Once created a booking is
// immutable; the only transition left is cancellation.
type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	petName       string
	planName      string
	dateText      string
	timeOfDay     string
	branchName    string
	appointmentAt time.Time
	createdAt     time.Time
}

func NewBooking(
	clk clock.Clock,
	userID uuid.UUID,
	petName, planName string,
	date time.Time,
	timeOfDay string,
	branchName string,
) (*Booking, error) {
	if strings.TrimSpace(petName) == "" ||
		strings.TrimSpace(planName) == "" ||
		strings.TrimSpace(branchName) == "" {
		return nil, ErrEmptySnapshotField
	}

	appointmentAt, err := AppointmentInstant(date, timeOfDay)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		petName:       petName,
		planName:      planName,
		dateText:      date.Format(DateDisplayFormat),
		timeOfDay:     timeOfDay,
		branchName:    branchName,
		appointmentAt: appointmentAt,
		createdAt:     clk.Now(),
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	petName, planName, dateText, timeOfDay, branchName string,
	appointmentAt, createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		petName:       petName,
		planName:      planName,
		dateText:      dateText,
		timeOfDay:     timeOfDay,
		branchName:    branchName,
		appointmentAt: appointmentAt,
		createdAt:     createdAt,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) PetName() string          { return b.petName }
func (b *Booking) PlanName() string         { return b.planName }
func (b *Booking) DateText() string         { return b.dateText }
func (b *Booking) TimeOfDay() string        { return b.timeOfDay }
func (b *Booking) BranchName() string       { return b.branchName }
func (b *Booking) AppointmentAt() time.Time { return b.appointmentAt }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }

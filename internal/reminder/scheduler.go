package reminder

import (
	"sync"
	"time"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Status is the per-booking reminder outcome surfaced to the client.
type Status string

const (
	// StatusNone means no reminder was ever requested for the booking.
	StatusNone Status = "none"
	// StatusScheduled means a one-shot timer is armed.
	StatusScheduled Status = "scheduled"
	// StatusPendingPermission means the request is parked until the user
	// grants notification permission.
	StatusPendingPermission Status = "pending_permission"
	// StatusBlocked means permission was denied; the reminder will never arm.
	StatusBlocked Status = "blocked"
	// StatusUnavailable means the client has no notification capability.
	StatusUnavailable Status = "unavailable"
	// StatusNotNeeded means the fire time was already in the past.
	StatusNotNeeded Status = "not_needed"
	// StatusFired means the reminder was delivered.
	StatusFired Status = "fired"
)

type Request struct {
	BookingID  uuid.UUID
	Date       time.Time
	TimeOfDay  string
	PetName    string
	BranchName string
}

// FireTime computes the reminder instant: the appointment date combined
// with its 12-hour clock string, minus the lead. A malformed clock string
// is a hard error; the scheduler must fail closed rather than guess and
// fire at a wrong time.
func FireTime(date time.Time, timeOfDay string, lead time.Duration) (time.Time, error) {
	appointmentAt, err := booking.AppointmentInstant(date, timeOfDay)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrTimeParse)
	}
	return appointmentAt.Add(-lead), nil
}

// Scheduler arms at most one one-shot reminder per booking. It owns every
// timer handle so a booking cancellation can render its reminder inert,
// and it parks requests made before notification permission is granted.
type Scheduler struct {
	mu         sync.Mutex
	clk        clock.Clock
	notifier   Notifier
	lead       time.Duration
	permission Permission
	timers     map[uuid.UUID]*time.Timer
	pending    map[uuid.UUID]Request
	statuses   map[uuid.UUID]Status
}

func NewScheduler(clk clock.Clock, notifier Notifier, lead time.Duration) *Scheduler {
	return &Scheduler{
		clk:        clk,
		notifier:   notifier,
		lead:       lead,
		permission: PermissionDefault,
		timers:     make(map[uuid.UUID]*time.Timer),
		pending:    make(map[uuid.UUID]Request),
		statuses:   make(map[uuid.UUID]Status),
	}
}

func (s *Scheduler) Permission() Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission
}

// SetPermission records the client's permission state. Requests parked
// while the permission was default are armed exactly once on the
// transition to granted, and closed out on denied/unsupported.
func (s *Scheduler) SetPermission(p Permission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.permission = p

	switch p {
	case PermissionGranted:
		for id, req := range s.pending {
			delete(s.pending, id)
			s.armLocked(id, req)
		}
	case PermissionDenied:
		for id := range s.pending {
			delete(s.pending, id)
			s.statuses[id] = StatusBlocked
		}
	case PermissionUnsupported:
		for id := range s.pending {
			delete(s.pending, id)
			s.statuses[id] = StatusUnavailable
		}
	}
}

// Schedule requests a reminder for a booking. Scheduling is idempotent per
// booking: a repeat call reports the existing outcome without arming a
// second timer.
func (s *Scheduler) Schedule(req Request) (Status, error) {
	fireAt, err := FireTime(req.Date, req.TimeOfDay, s.lead)
	if err != nil {
		return StatusNone, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.statuses[req.BookingID]; ok {
		return st, nil
	}

	if !fireAt.After(s.clk.Now()) {
		// Appointment is too soon or already past; not an error.
		s.statuses[req.BookingID] = StatusNotNeeded
		return StatusNotNeeded, nil
	}

	switch s.permission {
	case PermissionUnsupported:
		s.statuses[req.BookingID] = StatusUnavailable
	case PermissionDenied:
		s.statuses[req.BookingID] = StatusBlocked
	case PermissionGranted:
		s.armLocked(req.BookingID, req)
	default:
		s.pending[req.BookingID] = req
		s.statuses[req.BookingID] = StatusPendingPermission
	}

	return s.statuses[req.BookingID], nil
}

// Cancel stops and forgets any reminder state for the booking. A timer
// already racing through fire sees its status gone and stays silent.
func (s *Scheduler) Cancel(bookingID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[bookingID]; ok {
		t.Stop()
		delete(s.timers, bookingID)
	}
	delete(s.pending, bookingID)
	delete(s.statuses, bookingID)
}

func (s *Scheduler) Status(bookingID uuid.UUID) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.statuses[bookingID]; ok {
		return st
	}
	return StatusNone
}

func (s *Scheduler) armLocked(id uuid.UUID, req Request) {
	fireAt, err := FireTime(req.Date, req.TimeOfDay, s.lead)
	if err != nil {
		// Already validated on Schedule; fail closed if it slips through.
		return
	}

	delay := fireAt.Sub(s.clk.Now())
	if delay <= 0 {
		s.statuses[id] = StatusNotNeeded
		return
	}

	s.statuses[id] = StatusScheduled
	s.timers[id] = time.AfterFunc(delay, func() {
		s.fire(id, req)
	})
}

func (s *Scheduler) fire(id uuid.UUID, req Request) {
	s.mu.Lock()
	delete(s.timers, id)
	if s.statuses[id] != StatusScheduled {
		// Cancelled between timer expiry and this callback.
		s.mu.Unlock()
		return
	}
	s.statuses[id] = StatusFired
	s.mu.Unlock()

	s.notifier.Notify(Notification{
		BookingID:  id,
		PetName:    req.PetName,
		BranchName: req.BranchName,
		Body:       reminderBody(req.PetName, req.BranchName),
	})
}

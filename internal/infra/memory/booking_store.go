package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/infra"

	"github.com/google/uuid"
)

type bookingRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PetName       string
	PlanName      string
	DateText      string
	TimeOfDay     string
	BranchName    string
	AppointmentAt time.Time
	CreatedAt     time.Time
}

// BookingStore holds booking snapshots in memory. Records never change
// after insert; the only mutation is removal on cancellation.
type BookingStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]bookingRecord
	logger *slog.Logger
}

func NewBookingStore(logger *slog.Logger) *BookingStore {
	return &BookingStore{
		byID:   make(map[uuid.UUID]bookingRecord),
		logger: logger,
	}
}

func (s *BookingStore) Create(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[b.ID()]; exists {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "booking already exists", nil)
	}
	s.byID[b.ID()] = recordFromBooking(b)
	return nil
}

func (s *BookingStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
	}
	delete(s.byID, id)
	return nil
}

func (s *BookingStore) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
	}
	return bookingFromRecord(rec), nil
}

func (s *BookingStore) FindByUser(_ context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*booking.Booking, 0)
	for _, rec := range s.byID {
		if rec.UserID == userID {
			out = append(out, bookingFromRecord(rec))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})

	return out, nil
}

func recordFromBooking(b *booking.Booking) bookingRecord {
	return bookingRecord{
		ID:            b.ID(),
		UserID:        b.UserID(),
		PetName:       b.PetName(),
		PlanName:      b.PlanName(),
		DateText:      b.DateText(),
		TimeOfDay:     b.TimeOfDay(),
		BranchName:    b.BranchName(),
		AppointmentAt: b.AppointmentAt(),
		CreatedAt:     b.CreatedAt(),
	}
}

func bookingFromRecord(rec bookingRecord) *booking.Booking {
	return booking.ReconstructBooking(
		rec.ID, rec.UserID,
		rec.PetName, rec.PlanName, rec.DateText, rec.TimeOfDay, rec.BranchName,
		rec.AppointmentAt, rec.CreatedAt,
	)
}

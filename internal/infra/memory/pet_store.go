package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"petcare-booking/internal/domain/pet"
	"petcare-booking/internal/infra"

	"github.com/google/uuid"
)

type petRecord struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Breed     string
	Age       int
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PetStore is a mutex-guarded in-memory pet collection. All state lives
// for the process lifetime only; there is no persistence behind it.
type PetStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]petRecord
	logger *slog.Logger
}

func NewPetStore(logger *slog.Logger) *PetStore {
	return &PetStore{
		byID:   make(map[uuid.UUID]petRecord),
		logger: logger,
	}
}

func (s *PetStore) Create(_ context.Context, p *pet.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID()]; exists {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "pet already exists", nil)
	}
	s.byID[p.ID()] = recordFromPet(p)
	return nil
}

func (s *PetStore) Update(_ context.Context, p *pet.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID()]; !exists {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "pet not found", nil)
	}
	s.byID[p.ID()] = recordFromPet(p)
	return nil
}

// Delete is a no-op when the id is absent.
func (s *PetStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byID, id)
	return nil
}

func (s *PetStore) FindByID(_ context.Context, id uuid.UUID) (*pet.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "pet not found", nil)
	}
	return petFromRecord(rec), nil
}

// FindByOwner filters to one owner. Visibility is re-derived on every
// read, so an owner switch takes effect immediately.
func (s *PetStore) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*pet.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*pet.Pet, 0)
	for _, rec := range s.byID {
		if rec.OwnerID == ownerID {
			out = append(out, petFromRecord(rec))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})

	return out, nil
}

func recordFromPet(p *pet.Pet) petRecord {
	return petRecord{
		ID:        p.ID(),
		OwnerID:   p.OwnerID(),
		Name:      p.Name(),
		Breed:     p.Breed(),
		Age:       p.Age(),
		PhotoURL:  p.PhotoURL(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func petFromRecord(rec petRecord) *pet.Pet {
	return pet.ReconstructPet(rec.ID, rec.OwnerID, rec.Name, rec.Breed, rec.Age, rec.PhotoURL, rec.CreatedAt, rec.UpdatedAt)
}

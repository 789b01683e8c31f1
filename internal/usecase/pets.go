package usecase

import (
	"context"
	"time"

	"petcare-booking/internal/domain/pet"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPetNotFound    = errs.New("pet not found")
	ErrInvalidPetData = errs.New("invalid pet data")
)

type PetStore interface {
	Create(ctx context.Context, p *pet.Pet) error
	Update(ctx context.Context, p *pet.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pet.Pet, error)
}

type PetView struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PetParams struct {
	Name     string
	Breed    string
	Age      int
	PhotoURL string
}

type PetUseCase interface {
	AddPet(ctx context.Context, ownerID uuid.UUID, params PetParams) (*PetView, error)
	UpdatePet(ctx context.Context, ownerID, petID uuid.UUID, params PetParams) (*PetView, error)
	DeletePet(ctx context.Context, ownerID, petID uuid.UUID) error
	ListPets(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error)
}

type petUseCaseImpl struct {
	store PetStore
	clock clock.Clock
}

func NewPetUseCase(store PetStore, clock clock.Clock) PetUseCase {
	return &petUseCaseImpl{
		store: store,
		clock: clock,
	}
}

func (u *petUseCaseImpl) AddPet(ctx context.Context, ownerID uuid.UUID, params PetParams) (*PetView, error) {
	// Invalid age or empty fields are rejected outright, never coerced.
	entity, err := pet.NewPet(u.clock, ownerID, params.Name, params.Breed, params.Age, params.PhotoURL)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPetData)
	}

	if err := u.store.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return viewFromPet(entity), nil
}

func (u *petUseCaseImpl) UpdatePet(ctx context.Context, ownerID, petID uuid.UUID, params PetParams) (*PetView, error) {
	existing, err := u.store.FindByID(ctx, petID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	// Owner is immutable; edits from anyone else look like a missing pet
	// so ids cannot be probed across users.
	if existing.OwnerID() != ownerID {
		return nil, ErrPetNotFound
	}

	updated, err := existing.WithProfile(u.clock, params.Name, params.Breed, params.Age, params.PhotoURL)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPetData)
	}

	if err := u.store.Update(ctx, updated); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return viewFromPet(updated), nil
}

// DeletePet is a no-op when the pet is already gone; a pet owned by
// someone else is treated the same way.
func (u *petUseCaseImpl) DeletePet(ctx context.Context, ownerID, petID uuid.UUID) error {
	existing, err := u.store.FindByID(ctx, petID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if existing.OwnerID() != ownerID {
		return nil
	}

	return u.store.Delete(ctx, petID)
}

func (u *petUseCaseImpl) ListPets(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error) {
	pets, err := u.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	views := make([]*PetView, len(pets))
	for i, p := range pets {
		views[i] = viewFromPet(p)
	}
	return views, nil
}

func viewFromPet(p *pet.Pet) *PetView {
	return &PetView{
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

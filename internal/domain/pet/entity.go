package pet

import (
	"errors"
	"strings"
	"time"

	"petcare-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("pet name cannot be empty")
	ErrEmptyBreed  = errors.New("pet breed cannot be empty")
	ErrNegativeAge = errors.New("pet age cannot be negative")
)

// Pet is a user-owned grooming profile. The owner is fixed at creation;
// edits never move a pet between users.
type Pet struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	breed     string
	age       int
	photoURL  string
	createdAt time.Time
	updatedAt time.Time
}

func NewPet(clk clock.Clock, ownerID uuid.UUID, name, breed string, age int, photoURL string) (*Pet, error) {
	if err := validate(name, breed, age); err != nil {
		return nil, err
	}
	now := clk.Now()
	return &Pet{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      strings.TrimSpace(name),
		breed:     strings.TrimSpace(breed),
		age:       age,
		photoURL:  photoURL,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPet(id, ownerID uuid.UUID, name, breed string, age int, photoURL string, createdAt, updatedAt time.Time) *Pet {
	return &Pet{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		breed:     breed,
		age:       age,
		photoURL:  photoURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// WithProfile returns a copy carrying the edited profile fields. Identity,
// owner and creation time are preserved.
func (p *Pet) WithProfile(clk clock.Clock, name, breed string, age int, photoURL string) (*Pet, error) {
	if err := validate(name, breed, age); err != nil {
		return nil, err
	}
	updated := *p
	updated.name = strings.TrimSpace(name)
	updated.breed = strings.TrimSpace(breed)
	updated.age = age
	updated.photoURL = photoURL
	updated.updatedAt = clk.Now()
	return &updated, nil
}

func validate(name, breed string, age int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(breed) == "" {
		return ErrEmptyBreed
	}
	if age < 0 {
		return ErrNegativeAge
	}
	return nil
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Breed() string        { return p.breed }
func (p *Pet) Age() int             { return p.age }
func (p *Pet) PhotoURL() string     { return p.photoURL }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time { return p.updatedAt }

//go:build unit || e2e

package builder

import (
	"time"

	dompet "petcare-booking/internal/domain/pet"
	reqdto "petcare-booking/internal/handler/dto/request"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/usecase"

	"github.com/google/uuid"
)

type PetBuilder struct {
	OwnerID  uuid.UUID
	Name     string
	Breed    string
	Age      int
	PhotoURL string
	Now      time.Time
}

func NewPetBuilder() *PetBuilder {
	return &PetBuilder{
		OwnerID:  uuid.New(),
		Name:     "Buddy",
		Breed:    "Golden Retriever",
		Age:      3,
		PhotoURL: "https://images.dog.ceo/breeds/retriever-golden/n02099601_100.jpg",
		Now:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (b *PetBuilder) BuildDomain() (*dompet.Pet, error) {
	clk := clock.NewMockClock(b.Now)
	return dompet.NewPet(clk, b.OwnerID, b.Name, b.Breed, b.Age, b.PhotoURL)
}

func (b *PetBuilder) BuildRequestDTO() reqdto.PetRequest {
	age := b.Age
	return reqdto.PetRequest{
		Name:     b.Name,
		Breed:    b.Breed,
		Age:      &age,
		PhotoURL: b.PhotoURL,
	}
}

func (b *PetBuilder) BuildParams() usecase.PetParams {
	return usecase.PetParams{
		Name:     b.Name,
		Breed:    b.Breed,
		Age:      b.Age,
		PhotoURL: b.PhotoURL,
	}
}

func (b *PetBuilder) BuildView() *usecase.PetView {
	return &usecase.PetView{
		ID:        uuid.New(),
		OwnerID:   b.OwnerID,
		Name:      b.Name,
		Breed:     b.Breed,
		Age:       b.Age,
		PhotoURL:  b.PhotoURL,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

// Fluent builder methods
func (b *PetBuilder) WithOwnerID(ownerID uuid.UUID) *PetBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *PetBuilder) WithName(name string) *PetBuilder {
	b.Name = name
	return b
}

func (b *PetBuilder) WithBreed(breed string) *PetBuilder {
	b.Breed = breed
	return b
}

func (b *PetBuilder) WithAge(age int) *PetBuilder {
	b.Age = age
	return b
}

func (b *PetBuilder) WithPhotoURL(url string) *PetBuilder {
	b.PhotoURL = url
	return b
}

func (b *PetBuilder) WithNow(now time.Time) *PetBuilder {
	b.Now = now
	return b
}

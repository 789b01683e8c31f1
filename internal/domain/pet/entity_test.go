//go:build unit

package pet_test

import (
	"testing"
	"time"

	"petcare-booking/internal/domain/pet"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPet(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewPetBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.OwnerID, actual.OwnerID())
		assert.Equal(t, "Buddy", actual.Name())
		assert.Equal(t, "Golden Retriever", actual.Breed())
		assert.Equal(t, 3, actual.Age())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*builder.PetBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.PetBuilder) { b.WithName("") },
				errIs:  pet.ErrEmptyName,
			},
			{
				name:   "whitespace name",
				mutate: func(b *builder.PetBuilder) { b.WithName("   ") },
				errIs:  pet.ErrEmptyName,
			},
			{
				name:   "empty breed",
				mutate: func(b *builder.PetBuilder) { b.WithBreed("") },
				errIs:  pet.ErrEmptyBreed,
			},
			{
				name:   "negative age",
				mutate: func(b *builder.PetBuilder) { b.WithAge(-1) },
				errIs:  pet.ErrNegativeAge,
			},
			{
				name:   "zero age is a puppy, not an error",
				mutate: func(b *builder.PetBuilder) { b.WithAge(0) },
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := builder.NewPetBuilder()
				tt.mutate(b)
				actual, err := b.BuildDomain()
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("name and breed are trimmed", func(t *testing.T) {
		actual, err := builder.NewPetBuilder().WithName("  Rocky  ").WithBreed("  Pitbull  ").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Rocky", actual.Name())
		assert.Equal(t, "Pitbull", actual.Breed())
	})
}

func TestWithProfile(t *testing.T) {
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(created)

	original, err := pet.NewPet(clk, uuid.New(), "Buddy", "Golden Retriever", 3, "")
	require.NoError(t, err)

	clk.Add(time.Hour)
	edited, err := original.WithProfile(clk, "Buddy Jr.", "Labrador", 4, "https://example.com/buddy.jpg")
	require.NoError(t, err)

	t.Run("identity and lineage survive edits", func(t *testing.T) {
		assert.Equal(t, original.ID(), edited.ID())
		assert.Equal(t, original.OwnerID(), edited.OwnerID())
		assert.Equal(t, original.CreatedAt(), edited.CreatedAt())
	})

	t.Run("profile fields and updated time change", func(t *testing.T) {
		assert.Equal(t, "Buddy Jr.", edited.Name())
		assert.Equal(t, "Labrador", edited.Breed())
		assert.Equal(t, 4, edited.Age())
		assert.Equal(t, created.Add(time.Hour), edited.UpdatedAt())
	})

	t.Run("the original is left untouched", func(t *testing.T) {
		assert.Equal(t, "Buddy", original.Name())
		assert.Equal(t, 3, original.Age())
	})

	t.Run("invalid edits are rejected", func(t *testing.T) {
		_, err := original.WithProfile(clk, "", "Labrador", 4, "")
		assert.ErrorIs(t, err, pet.ErrEmptyName)

		_, err = original.WithProfile(clk, "Buddy", "Labrador", -2, "")
		assert.ErrorIs(t, err, pet.ErrNegativeAge)
	})
}

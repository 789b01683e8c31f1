//go:build unit

package catalog_test

import (
	"testing"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	plans := []catalog.Plan{{ID: "p1", Name: "Basic", Price: 45, Features: []string{"bath"}}}
	branches := []catalog.Branch{{ID: "b1", Name: "Centro", Address: "Calle 1"}}
	slots := []string{"09:00 AM"}

	t.Run("basic success case", func(t *testing.T) {
		c, err := catalog.New(plans, branches, slots)
		require.NoError(t, err)

		p, ok := c.PlanByID("p1")
		assert.True(t, ok)
		assert.Equal(t, "Basic", p.Name)

		b, ok := c.BranchByID("b1")
		assert.True(t, ok)
		assert.Equal(t, "Centro", b.Name)

		assert.True(t, c.HasTimeSlot("09:00 AM"))
		assert.False(t, c.HasTimeSlot("09:30 AM"))

		_, ok = c.PlanByID("missing")
		assert.False(t, ok)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := catalog.New([]catalog.Plan{{ID: "", Name: "x", Price: 1}}, nil, nil)
		assert.ErrorIs(t, err, catalog.ErrEmptyID)

		_, err = catalog.New([]catalog.Plan{{ID: "p1", Name: "x", Price: 0}}, nil, nil)
		assert.ErrorIs(t, err, catalog.ErrInvalidPrice)

		_, err = catalog.New([]catalog.Plan{{ID: "p1", Price: 1}, {ID: "p1", Price: 2}}, nil, nil)
		assert.ErrorIs(t, err, catalog.ErrDuplicateID)

		_, err = catalog.New(nil, []catalog.Branch{{ID: "b1"}, {ID: "b1"}}, nil)
		assert.ErrorIs(t, err, catalog.ErrDuplicateID)
	})

	t.Run("accessors hand out copies", func(t *testing.T) {
		c, err := catalog.New(plans, branches, slots)
		require.NoError(t, err)

		got := c.Plans()
		got[0].Name = "tampered"
		got[0].Features[0] = "tampered"

		fresh, _ := c.PlanByID("p1")
		assert.Equal(t, "Basic", fresh.Name)
		assert.Equal(t, []string{"bath"}, fresh.Features)

		again := c.Plans()
		assert.Equal(t, "Basic", again[0].Name)
		assert.Equal(t, []string{"bath"}, again[0].Features)
	})

	t.Run("feature lists returned by lookup do not alias catalog state", func(t *testing.T) {
		c, err := catalog.New(plans, branches, slots)
		require.NoError(t, err)

		p, ok := c.PlanByID("p1")
		require.True(t, ok)
		p.Features[0] = "tampered"

		fresh, _ := c.PlanByID("p1")
		assert.Equal(t, []string{"bath"}, fresh.Features)
	})
}

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	assert.Len(t, c.Plans(), 3)
	assert.Len(t, c.Branches(), 6)
	assert.Len(t, c.TimeSlots(), 6)

	plan, ok := c.PlanByID("plan2")
	require.True(t, ok)
	expected := catalog.Plan{
		ID:          "plan2",
		Name:        "Mimo Premium",
		Description: "La experiencia de spa definitiva.",
		Price:       75,
		Features:    []string{"2 Sesiones de Aseo", "Champú Premium", "Tratamiento de Bálsamo para Patas", "Cepillado de Dientes", "Corte de Pelo Estilizado"},
	}
	if diff := cmp.Diff(expected, plan); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}

	branch, ok := c.BranchByID("b1")
	require.True(t, ok)
	assert.Equal(t, "Sucursal Palermo", branch.Name)

	// every published slot must parse as a bookable clock time
	for _, slot := range c.TimeSlots() {
		assert.True(t, c.HasTimeSlot(slot))
		_, _, err := booking.ParseClockTime(slot)
		assert.NoError(t, err, "slot %q is not a valid clock time", slot)
	}
}

package catalog

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPrice = errors.New("plan price must be positive")
	ErrEmptyID      = errors.New("catalog id cannot be empty")
	ErrDuplicateID  = errors.New("duplicate catalog id")
)

// Plan is a grooming subscription offering. Catalog entries are defined at
// process start and never mutated.
type Plan struct {
	ID          string
	Name        string
	Description string
	Price       int
	Features    []string
}

type Branch struct {
	ID      string
	Name    string
	Address string
}

// Catalog is the immutable set of plans, branches and bookable times.
// Accessors hand out copies so callers cannot mutate the shared lists.
type Catalog struct {
	plans      []Plan
	branches   []Branch
	timeSlots  []string
	planByID   map[string]Plan
	branchByID map[string]Branch
	slotSet    map[string]struct{}
}

func New(plans []Plan, branches []Branch, timeSlots []string) (*Catalog, error) {
	c := &Catalog{
		plans:      make([]Plan, 0, len(plans)),
		branches:   make([]Branch, 0, len(branches)),
		timeSlots:  make([]string, 0, len(timeSlots)),
		planByID:   make(map[string]Plan, len(plans)),
		branchByID: make(map[string]Branch, len(branches)),
		slotSet:    make(map[string]struct{}, len(timeSlots)),
	}

	for _, p := range plans {
		if strings.TrimSpace(p.ID) == "" {
			return nil, ErrEmptyID
		}
		if p.Price <= 0 {
			return nil, ErrInvalidPrice
		}
		if _, exists := c.planByID[p.ID]; exists {
			return nil, ErrDuplicateID
		}
		p.Features = append([]string(nil), p.Features...)
		c.plans = append(c.plans, p)
		c.planByID[p.ID] = p
	}

	for _, b := range branches {
		if strings.TrimSpace(b.ID) == "" {
			return nil, ErrEmptyID
		}
		if _, exists := c.branchByID[b.ID]; exists {
			return nil, ErrDuplicateID
		}
		c.branches = append(c.branches, b)
		c.branchByID[b.ID] = b
	}

	for _, s := range timeSlots {
		c.timeSlots = append(c.timeSlots, s)
		c.slotSet[s] = struct{}{}
	}

	return c, nil
}

func (c *Catalog) Plans() []Plan {
	plans := make([]Plan, len(c.plans))
	for i, p := range c.plans {
		plans[i] = copyPlan(p)
	}
	return plans
}

func (c *Catalog) Branches() []Branch {
	return append([]Branch(nil), c.branches...)
}

func (c *Catalog) TimeSlots() []string {
	return append([]string(nil), c.timeSlots...)
}

func (c *Catalog) PlanByID(id string) (Plan, bool) {
	p, ok := c.planByID[id]
	if !ok {
		return Plan{}, false
	}
	return copyPlan(p), true
}

// copyPlan clones the Features slice so a returned Plan never aliases
// catalog state.
func copyPlan(p Plan) Plan {
	p.Features = append([]string(nil), p.Features...)
	return p
}

func (c *Catalog) BranchByID(id string) (Branch, bool) {
	b, ok := c.branchByID[id]
	return b, ok
}

func (c *Catalog) HasTimeSlot(slot string) bool {
	_, ok := c.slotSet[slot]
	return ok
}

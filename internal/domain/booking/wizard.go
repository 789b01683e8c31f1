package booking

import (
	"time"

	"github.com/google/uuid"
)

// Draft is the wizard's working selection. The date always carries a
// default (today) and therefore never holds the flow back; the other three
// fields are filled in any order the user likes.
type Draft struct {
	PetID    *uuid.UUID
	Date     *time.Time
	Time     *string
	BranchID *string
}

// DeriveStep recomputes the wizard position from whichever selections are
// present. The step is not stored anywhere: it is 1 plus the count of
// satisfied prefix gates of ((pet AND time), branch). Presence is all that
// is checked, so picking a time before a pet leaves the user on step 1
// until the pet arrives, and a chosen branch counts for nothing while the
// first gate is open.
func DeriveStep(d Draft) Step {
	switch {
	case d.PetID != nil && d.Time != nil && d.BranchID != nil:
		return StepConfirm
	case d.PetID != nil && d.Time != nil:
		return StepBranch
	default:
		return StepPetAndSchedule
	}
}

// Complete reports whether the draft satisfies the submit precondition:
// every selection, including the date, must be present.
func (d Draft) Complete() bool {
	return d.PetID != nil && d.Date != nil && d.Time != nil && d.BranchID != nil
}

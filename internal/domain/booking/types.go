package booking

// Step is the 1-indexed wizard position shown to the user.
type Step int

const (
	StepPetAndSchedule Step = 1
	StepBranch         Step = 2
	StepConfirm        Step = 3
)

func (s Step) String() string {
	switch s {
	case StepPetAndSchedule:
		return "pet_and_schedule"
	case StepBranch:
		return "branch"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

func (s Step) IsValid() bool {
	return s >= StepPetAndSchedule && s <= StepConfirm
}

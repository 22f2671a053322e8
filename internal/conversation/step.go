package conversation

import "fmt"

// Step is the position of a user inside the conversation.
type Step int

const (
	StepIdle Step = iota
	StepLearning
	StepCategory
	StepDescription
	StepPrice
	StepConfirm
)

var stepNames = map[Step]string{
	StepIdle:        "idle",
	StepLearning:    "learning",
	StepCategory:    "category",
	StepDescription: "description",
	StepPrice:       "price",
	StepConfirm:     "confirm",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// MarshalText keeps the stored form readable for the Redis backend.
func (s Step) MarshalText() ([]byte, error) {
	name, ok := stepNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown step %d", int(s))
	}
	return []byte(name), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for step, name := range stepNames {
		if name == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown step %q", text)
}

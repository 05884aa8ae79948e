package powersuit

// Phase is the phase of the current round
type Phase int

// phase constants
const (
	PhaseWaiting Phase = iota
	PhaseBidding
	PhasePlaying
	PhaseScoring
)

var phaseNames = map[Phase]string{
	PhaseWaiting: "waiting",
	PhaseBidding: "bidding",
	PhasePlaying: "playing",
	PhaseScoring: "scoring",
}

// transitions lists every phase a phase may move to
var transitions = map[Phase][]Phase{
	PhaseWaiting: {PhaseBidding},
	PhaseBidding: {PhasePlaying},
	PhasePlaying: {PhaseScoring},
	PhaseScoring: {PhaseBidding},
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}

	return "unknown"
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// CanTransition returns true if the phase may move to next
func (p Phase) CanTransition(next Phase) bool {
	for _, allowed := range transitions[p] {
		if allowed == next {
			return true
		}
	}

	return false
}

// actions lists the phases in which each client intent is accepted
var actions = map[string][]Phase{
	"join":  {PhaseWaiting, PhaseBidding, PhasePlaying, PhaseScoring},
	"ready": {PhaseWaiting, PhaseScoring},
	"bid":   {PhaseBidding},
	"play":  {PhasePlaying},
}

// Allows returns true if the action is valid during the phase
func (p Phase) Allows(action string) bool {
	for _, phase := range actions[action] {
		if phase == p {
			return true
		}
	}

	return false
}

package combat

// Outcome is the result of a player shot reaching an enemy.
type Outcome int

const (
	OutcomeMismatched Outcome = iota
	OutcomeWounded
	OutcomeKilled
	// OutcomeIgnored is returned for hits on a target that was already
	// destroyed earlier in the frame.
	OutcomeIgnored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMismatched:
		return "mismatched"
	case OutcomeWounded:
		return "wounded"
	case OutcomeKilled:
		return "killed"
	case OutcomeIgnored:
		return "ignored"
	}
	return "unknown"
}

func (o Outcome) Lethal() bool {
	return o == OutcomeKilled
}

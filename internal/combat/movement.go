package combat

import (
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// MovementPolicy decides what happens when a token moves farther than its
// remaining movement.
type MovementPolicy string

const (
	// MovementAdvisory allows the move and flags the overspend.
	MovementAdvisory MovementPolicy = "advisory"
	// MovementStrict rejects the move.
	MovementStrict MovementPolicy = "strict"
)

// ParseMovementPolicy maps a config value to a policy.
func ParseMovementPolicy(s string) (MovementPolicy, error) {
	switch MovementPolicy(s) {
	case MovementAdvisory, "":
		return MovementAdvisory, nil
	case MovementStrict:
		return MovementStrict, nil
	}
	return "", errors.InvalidArgumentf("unknown movement policy %q", s)
}

// MovementResult reports a spend against the movement counter.
type MovementResult struct {
	SpentFeet     int  `json:"spent_feet"`
	RemainingFeet int  `json:"remaining_feet"`
	Exceeded      bool `json:"exceeded"`
}

// SpendMovement decrements the movement counter. Under the strict policy a
// move beyond the remaining movement is rejected and nothing changes; under
// the advisory policy the counter bottoms out at zero and Exceeded is set.
func (c *Combatant) SpendMovement(feet int, policy MovementPolicy) (MovementResult, error) {
	if feet < 0 {
		return MovementResult{}, errors.InvalidArgument("movement cannot be negative")
	}

	exceeded := feet > c.MovementRemaining
	if exceeded && policy == MovementStrict {
		return MovementResult{}, errors.FailedPreconditionf("%s has only %d ft of movement left", c.Name, c.MovementRemaining).
			WithMeta("token_id", c.TokenID).
			WithMeta("requested_ft", feet).
			WithMeta("remaining_ft", c.MovementRemaining)
	}

	c.MovementRemaining -= feet
	if c.MovementRemaining < 0 {
		c.MovementRemaining = 0
	}

	return MovementResult{
		SpentFeet:     feet,
		RemainingFeet: c.MovementRemaining,
		Exceeded:      exceeded,
	}, nil
}

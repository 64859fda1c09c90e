package grading

import "fmt"

// AttemptRecord is the slice of a past exam result the gate cares about.
type AttemptRecord struct {
	ViolationCount int
}

// Decision is the gate's verdict for starting a new attempt. A negative
// decision is a normal business outcome, not an error.
type Decision struct {
	Allowed      bool   `json:"allowed"`
	Reason       string `json:"reason,omitempty"`
	AttemptsUsed int    `json:"attemptsUsed"`
}

// CanAttempt evaluates the attempt gate in order: a violation on any past
// attempt locks the quiz permanently, regardless of remaining attempts;
// otherwise the attempt count is checked against the quiz limit.
//
// This check is advisory, run before an attempt starts. The enforced
// limit is the unique (student, quiz, attempt_no) index written at
// submission time.
func CanAttempt(past []AttemptRecord, maxAttempts int) Decision {
	decision := Decision{AttemptsUsed: len(past)}

	for _, r := range past {
		if r.ViolationCount > 0 {
			decision.Reason = "You are blocked from retaking this quiz due to suspicious activity in a previous attempt."
			return decision
		}
	}

	if len(past) >= maxAttempts {
		decision.Reason = fmt.Sprintf("You have used all %d attempts allowed for this quiz.", maxAttempts)
		return decision
	}

	decision.Allowed = true
	return decision
}

package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAttempt(t *testing.T) {
	tests := []struct {
		name        string
		past        []AttemptRecord
		maxAttempts int
		allowed     bool
	}{
		{"first attempt", nil, 1, true},
		{"attempts remaining", []AttemptRecord{{}, {}}, 3, true},
		{"attempts exhausted", []AttemptRecord{{}, {}, {}}, 3, false},
		{"violation locks despite remaining attempts", []AttemptRecord{{ViolationCount: 1}}, 3, false},
		{"violation on any past attempt locks", []AttemptRecord{{}, {ViolationCount: 2}, {}}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := CanAttempt(tt.past, tt.maxAttempts)
			assert.Equal(t, tt.allowed, decision.Allowed)
			assert.Equal(t, len(tt.past), decision.AttemptsUsed)
			if !tt.allowed {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestViolationLockoutOverridesAttemptCount(t *testing.T) {
	decision := CanAttempt([]AttemptRecord{{ViolationCount: 1}}, 3)

	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "suspicious activity")
}

func TestExhaustedReasonNamesTheLimit(t *testing.T) {
	decision := CanAttempt([]AttemptRecord{{}, {}, {}}, 3)

	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "all 3 attempts")
}

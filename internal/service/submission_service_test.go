package service

import (
	"testing"

	"github.com/Bright-ted/SkillTrack/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswerKeys(t *testing.T) {
	parsed := parseAnswerKeys(map[string]string{
		"1":    "A",
		"42":   "photosynthesis",
		"abc":  "ignored",
		"-5":   "ignored",
		"3.14": "ignored",
	})

	assert.Equal(t, map[uint]string{
		1:  "A",
		42: "photosynthesis",
	}, parsed)
}

func TestParseAnswerKeysEmpty(t *testing.T) {
	assert.Empty(t, parseAnswerKeys(nil))
}

func TestToAttemptRecords(t *testing.T) {
	records := toAttemptRecords([]model.ExamResult{
		{ViolationCount: 0},
		{ViolationCount: 2},
	})

	assert.Len(t, records, 2)
	assert.Equal(t, 0, records[0].ViolationCount)
	assert.Equal(t, 2, records[1].ViolationCount)
}

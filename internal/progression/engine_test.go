package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTable = []Threshold{
	{Level: 1, XPRequired: 0, Badge: "Novice"},
	{Level: 2, XPRequired: 100, Badge: "Apprentice"},
	{Level: 3, XPRequired: 300, Badge: "Expert"},
}

func TestComputeAwardVectors(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		category string
		score    int
		delta    int
	}{
		{"general full marks", 0, "General", 100, 150},  // 100*1 + 50
		{"advanced low pass", 0, "Advanced", 60, 190},   // 60*3 + 10
		{"intermediate mid", 0, "Intermediate", 75, 170}, // 75*2 + 20
		{"unrecognized category falls back", 0, "Underwater Basketry", 80, 110}, // 80*1 + 30
		{"zero score still earns floor bonus", 0, "General", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			award := ComputeAward(tt.points, tt.category, tt.score, "Quiz", testTable)
			assert.Equal(t, tt.delta, award.XPDelta)
			assert.Equal(t, tt.points+tt.delta, award.NewPoints)
		})
	}
}

func TestBonusTiers(t *testing.T) {
	for score, want := range map[int]int{100: 50, 90: 50, 89: 30, 80: 30, 79: 20, 70: 20, 69: 10, 60: 10, 59: 5, 0: 5} {
		assert.Equalf(t, want, Bonus(score), "score %d", score)
	}
}

func TestResolveLevelBoundaryInclusive(t *testing.T) {
	level, badge := ResolveLevel(testTable, 250)
	assert.Equal(t, 2, level)
	assert.Equal(t, "Apprentice", badge)

	level, badge = ResolveLevel(testTable, 300)
	assert.Equal(t, 3, level)
	assert.Equal(t, "Expert", badge)

	level, badge = ResolveLevel(testTable, 0)
	assert.Equal(t, 1, level)
	assert.Equal(t, "Novice", badge)
}

func TestResolveLevelEmptyTable(t *testing.T) {
	level, badge := ResolveLevel(nil, 9999)
	assert.Equal(t, 1, level)
	assert.Equal(t, "Novice", badge)
}

func TestAwardAccumulates(t *testing.T) {
	award := ComputeAward(120, "General", 95, "Final Review", testTable)

	assert.Equal(t, 145, award.XPDelta) // 95 + 50
	assert.Equal(t, 265, award.NewPoints)
	assert.Equal(t, 2, award.NewLevel)
	assert.Equal(t, "Apprentice", award.NewBadge)
	assert.Contains(t, award.Reason, "Final Review")
}

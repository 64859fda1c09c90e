package service

import (
	"testing"

	"github.com/Bright-ted/SkillTrack/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRankLeaderboard(t *testing.T) {
	board := []LeaderboardEntry{
		{UserID: 1, FullName: "Ada", QuizzesTaken: 2, AverageScore: 70, TotalScore: 140},
		{UserID: 2, FullName: "Ben", QuizzesTaken: 0, AverageScore: 0, TotalScore: 0},
		{UserID: 3, FullName: "Cleo", QuizzesTaken: 3, AverageScore: 90, TotalScore: 270},
		{UserID: 4, FullName: "Dan", QuizzesTaken: 1, AverageScore: 70, TotalScore: 70},
	}

	ranked := rankLeaderboard(board)

	assert.Equal(t, uint(3), ranked[0].UserID)
	assert.Equal(t, 1, ranked[0].Rank)

	// Tie at 70: Ada enrolled before Dan, so she keeps the higher rank.
	assert.Equal(t, uint(1), ranked[1].UserID)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, uint(4), ranked[2].UserID)

	// Zero attempts sink to the bottom.
	assert.Equal(t, uint(2), ranked[3].UserID)
	assert.Equal(t, 4, ranked[3].Rank)
	assert.Equal(t, 0, ranked[3].QuizzesTaken)
}

func TestRankLeaderboardEmpty(t *testing.T) {
	assert.Empty(t, rankLeaderboard(nil))
}

func TestGradebookRows(t *testing.T) {
	quizzes := []model.Quiz{
		{BaseModel: model.BaseModel{ID: 10}, Title: "Week 1"},
		{BaseModel: model.BaseModel{ID: 11}, Title: "Week 2"},
	}
	users := []model.User{
		{BaseModel: model.BaseModel{ID: 1}, FullName: "Ada Learner"},
		{BaseModel: model.BaseModel{ID: 2}, FullName: "Ben Learner"},
	}
	numbers := map[uint]string{1: "STU-1001"}
	best := map[uint]map[uint]int{
		1: {10: 80, 11: 45},
		// Ben never attempted Week 2; the missing score counts as 0.
		2: {10: 90},
	}

	rows := gradebookRows(quizzes, users, numbers, best, 40)

	assert.Equal(t, []string{"Student Name", "ID", "Week 1", "Week 2", "Average %", "Final CA (/40)"}, rows[0])
	assert.Equal(t, []string{"Ada Learner", "STU-1001", "80", "45", "63%", "25"}, rows[1])
	// No profile row exports as N/A.
	assert.Equal(t, []string{"Ben Learner", "N/A", "90", "0", "45%", "18"}, rows[2])
}

func TestGradebookRowsNoQuizzes(t *testing.T) {
	users := []model.User{{BaseModel: model.BaseModel{ID: 1}, FullName: "Ada Learner"}}

	rows := gradebookRows(nil, users, map[uint]string{1: "STU-1001"}, nil, 40)

	assert.Equal(t, []string{"Student Name", "ID", "Average %", "Final CA (/40)"}, rows[0])
	assert.Equal(t, []string{"Ada Learner", "STU-1001", "0%", "0"}, rows[1])
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Intro to Go", "intro_to_go"},
		{"  CS-101: Data Structures ", "cs_101_data_structures"},
		{"数学", "course"},
		{"", "course"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.title), "title %q", tt.title)
	}
}

package grading

import (
	"testing"

	"github.com/Bright-ted/SkillTrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mcq(id uint, correct string) Question {
	return Question{
		ID:     id,
		Prompt: "pick one",
		Key: ChoiceKey{
			CorrectLabel: correct,
			Options:      map[string]string{"A": "alpha", "B": "beta", "C": "gamma", "D": "delta"},
		},
	}
}

func TestGradeAllCorrect(t *testing.T) {
	questions := []Question{
		mcq(1, "A"),
		{ID: 2, Prompt: "capital of France", Key: BlankKey{CorrectText: "Paris"}},
		{ID: 3, Prompt: "explain TCP", Key: KeywordKey{Keywords: []string{"handshake", "ack"}}},
	}
	answers := map[uint]string{
		1: "A",
		2: "  paris ",
		3: "it opens with a three-way HANDSHAKE",
	}

	result := Grade(questions, answers)

	assert.Equal(t, 3, result.CorrectCount)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 100, result.ScorePercent)
	assert.True(t, result.Passed())
}

func TestGradeNoQuestions(t *testing.T) {
	result := Grade(nil, map[uint]string{1: "A"})

	assert.Equal(t, 0, result.ScorePercent)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.False(t, result.Passed())
	assert.Empty(t, result.Review)
}

func TestGradeRounding(t *testing.T) {
	// 2 of 3 correct = 66.67 -> 67
	questions := []Question{mcq(1, "A"), mcq(2, "B"), mcq(3, "C")}
	result := Grade(questions, map[uint]string{1: "A", 2: "B", 3: "D"})

	assert.Equal(t, 67, result.ScorePercent)
	assert.False(t, result.Review[2].IsCorrect)
}

func TestMultipleChoiceCaseInsensitive(t *testing.T) {
	result := Grade([]Question{mcq(1, "A")}, map[uint]string{1: "a"})
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, "alpha", result.Review[0].UserAnswer)
	assert.Equal(t, "alpha", result.Review[0].CorrectAnswer)
}

func TestFillBlankFolding(t *testing.T) {
	q := Question{ID: 1, Key: BlankKey{CorrectText: " Photosynthesis "}}

	for submitted, want := range map[string]bool{
		"photosynthesis":   true,
		"  PHOTOSYNTHESIS": true,
		"photo synthesis":  false,
		"":                 false,
	} {
		result := Grade([]Question{q}, map[uint]string{1: submitted})
		assert.Equalf(t, want, result.Review[0].IsCorrect, "submitted %q", submitted)
	}
}

func TestTheoryGrading(t *testing.T) {
	tests := []struct {
		name      string
		keywords  []string
		submitted string
		want      bool
	}{
		{"keyword as substring", []string{"pointer", "address"}, "a Pointer stores an ADDRESS", true},
		{"single keyword hit", []string{"recursion"}, "solved with recursion", true},
		{"no keyword present", []string{"stack", "heap"}, "registers only", false},
		{"empty submission never matches", []string{"anything"}, "", false},
		{"empty keyword list never satisfied", nil, "a thorough essay", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{ID: 1, Key: KeywordKey{Keywords: tt.keywords}}
			result := Grade([]Question{q}, map[uint]string{1: tt.submitted})
			assert.Equal(t, tt.want, result.Review[0].IsCorrect)
		})
	}
}

func TestMissingAnswersAreSkipped(t *testing.T) {
	questions := []Question{mcq(1, "B"), {ID: 2, Key: BlankKey{CorrectText: "x"}}}
	result := Grade(questions, map[uint]string{})

	require.Len(t, result.Review, 2)
	assert.Equal(t, 0, result.CorrectCount)
	assert.Equal(t, "Skipped", result.Review[0].UserAnswer)
	assert.Equal(t, "Skipped", result.Review[1].UserAnswer)
}

func TestReviewPreservesQuestionOrder(t *testing.T) {
	questions := []Question{mcq(7, "A"), mcq(3, "B"), mcq(5, "C")}
	result := Grade(questions, nil)

	ids := []uint{result.Review[0].QuestionID, result.Review[1].QuestionID, result.Review[2].QuestionID}
	assert.Equal(t, []uint{7, 3, 5}, ids)
}

func TestToQuestionVariants(t *testing.T) {
	rows := []model.Question{
		{BaseModel: model.BaseModel{ID: 1}, QuestionType: model.MCQ, CorrectOption: "C", OptionC: "gamma"},
		{BaseModel: model.BaseModel{ID: 2}, QuestionType: model.FillBlank, CorrectOption: "osmosis"},
		{BaseModel: model.BaseModel{ID: 3}, QuestionType: model.Theory, Keywords: "loop, , array ,"},
	}

	questions := ToQuestions(rows)
	require.Len(t, questions, 3)

	choice, ok := questions[0].Key.(ChoiceKey)
	require.True(t, ok)
	assert.Equal(t, "C", choice.CorrectLabel)
	assert.Equal(t, "gamma", choice.Options["C"])

	blank, ok := questions[1].Key.(BlankKey)
	require.True(t, ok)
	assert.Equal(t, "osmosis", blank.CorrectText)

	keyword, ok := questions[2].Key.(KeywordKey)
	require.True(t, ok)
	assert.Equal(t, []string{"loop", "array"}, keyword.Keywords)
}

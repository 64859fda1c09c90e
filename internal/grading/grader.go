package grading

import (
	"math"
	"strings"
)

// PassMark is the minimum percentage score counted as a pass.
const PassMark = 50

const skippedDisplay = "Skipped"

// QuestionReview is one line of the per-question breakdown shown after
// submission and on the instructor's manual-grading screen.
type QuestionReview struct {
	QuestionID    uint   `json:"questionId"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// Result is the outcome of grading one submission.
type Result struct {
	CorrectCount   int
	TotalQuestions int
	ScorePercent   int
	Review         []QuestionReview
}

// Passed reports whether the score clears the pass mark.
func (r Result) Passed() bool {
	return r.ScorePercent >= PassMark
}

// Grade computes per-question correctness and the aggregate percentage
// score for a submission. It is pure: same questions and answers always
// produce the same result. Missing or malformed answers grade as
// incorrect, never as an error, and an empty question set scores 0.
func Grade(questions []Question, answers map[uint]string) Result {
	result := Result{
		TotalQuestions: len(questions),
		Review:         make([]QuestionReview, 0, len(questions)),
	}

	for _, q := range questions {
		submitted := strings.TrimSpace(answers[q.ID])
		correct := isCorrect(q.Key, submitted)
		if correct {
			result.CorrectCount++
		}
		result.Review = append(result.Review, buildReview(q, submitted, correct))
	}

	if result.TotalQuestions > 0 {
		result.ScorePercent = int(math.Round(float64(result.CorrectCount) / float64(result.TotalQuestions) * 100))
	}
	return result
}

func isCorrect(key AnswerKey, submitted string) bool {
	switch k := key.(type) {
	case ChoiceKey:
		return submitted != "" &&
			strings.EqualFold(submitted, strings.TrimSpace(k.CorrectLabel))
	case BlankKey:
		return submitted != "" &&
			strings.EqualFold(submitted, strings.TrimSpace(k.CorrectText))
	case KeywordKey:
		if submitted == "" {
			return false
		}
		folded := strings.ToLower(submitted)
		for _, kw := range k.Keywords {
			if strings.Contains(folded, strings.ToLower(kw)) {
				return true
			}
		}
		return false
	}
	return false
}

func buildReview(q Question, submitted string, correct bool) QuestionReview {
	review := QuestionReview{
		QuestionID: q.ID,
		Question:   q.Prompt,
		UserAnswer: skippedDisplay,
		IsCorrect:  correct,
	}

	switch k := q.Key.(type) {
	case ChoiceKey:
		if text, ok := k.Options[strings.ToUpper(submitted)]; ok && submitted != "" {
			review.UserAnswer = text
		}
		review.CorrectAnswer = k.Options[strings.ToUpper(strings.TrimSpace(k.CorrectLabel))]
	case BlankKey:
		if submitted != "" {
			review.UserAnswer = submitted
		}
		review.CorrectAnswer = k.CorrectText
	case KeywordKey:
		if submitted != "" {
			review.UserAnswer = submitted
		}
		review.CorrectAnswer = "Must contain: " + strings.Join(k.Keywords, ", ")
	}
	return review
}

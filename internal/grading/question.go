package grading

import (
	"strings"

	"github.com/Bright-ted/SkillTrack/internal/model"
)

// AnswerKey is the tagged variant behind question grading: exactly one
// concrete key type per question type, each carrying only the fields that
// type needs. Stored rows keep their flat shape; ToQuestion converts
// at the boundary so the grader never sees nullable columns.
type AnswerKey interface {
	isAnswerKey()
}

// ChoiceKey grades multiple-choice questions by option label.
type ChoiceKey struct {
	CorrectLabel string
	Options      map[string]string // label -> display text
}

// BlankKey grades fill-in-the-blank questions by exact (folded) text.
type BlankKey struct {
	CorrectText string
}

// KeywordKey grades free-text questions by keyword presence.
type KeywordKey struct {
	Keywords []string
}

func (ChoiceKey) isAnswerKey()  {}
func (BlankKey) isAnswerKey()   {}
func (KeywordKey) isAnswerKey() {}

// Question is the grader's view of a quiz question.
type Question struct {
	ID     uint
	Prompt string
	Key    AnswerKey
}

// ToQuestion converts a stored question row into its typed grading form.
func ToQuestion(q *model.Question) Question {
	out := Question{ID: q.ID, Prompt: q.QuestionText}

	switch q.QuestionType {
	case model.FillBlank:
		out.Key = BlankKey{CorrectText: q.CorrectOption}
	case model.Theory:
		out.Key = KeywordKey{Keywords: splitKeywords(q.Keywords)}
	default:
		out.Key = ChoiceKey{
			CorrectLabel: q.CorrectOption,
			Options: map[string]string{
				"A": q.OptionA,
				"B": q.OptionB,
				"C": q.OptionC,
				"D": q.OptionD,
			},
		}
	}
	return out
}

// ToQuestions converts rows preserving their order.
func ToQuestions(rows []model.Question) []Question {
	questions := make([]Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, ToQuestion(&rows[i]))
	}
	return questions
}

// splitKeywords drops empty entries so a keyword list of "" or ", ,"
// can never be satisfied.
func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

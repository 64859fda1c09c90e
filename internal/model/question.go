package model

type QuestionType string

const (
	MCQ       QuestionType = "MCQ"
	FillBlank QuestionType = "FILL_BLANK"
	Theory    QuestionType = "THEORY"
)

// Question stores all three answer-key shapes in one row; only the columns
// for its type are populated. The grading package converts each row into a
// typed key (grading.AnswerKey) before any correctness check, so the
// nullable sprawl never leaks past the repository boundary.
// swagger:model Question
type Question struct {
	BaseModel
	QuizID       uint         `gorm:"index;type:bigint unsigned" json:"quizId"`
	QuestionText string       `gorm:"type:text;not null" json:"questionText"`
	QuestionType QuestionType `gorm:"type:enum('MCQ','FILL_BLANK','THEORY');default:'MCQ'" json:"questionType"`

	// MCQ
	OptionA       string `gorm:"size:255" json:"optionA,omitempty"`
	OptionB       string `gorm:"size:255" json:"optionB,omitempty"`
	OptionC       string `gorm:"size:255" json:"optionC,omitempty"`
	OptionD       string `gorm:"size:255" json:"optionD,omitempty"`
	// CorrectOption doubles as the expected text for FILL_BLANK.
	CorrectOption string `gorm:"size:255" json:"-"`

	// THEORY: comma-separated keyword list
	Keywords string `gorm:"type:text" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionText resolves an MCQ label to its display text. Empty when the
// label is unknown or the question is not multiple choice.
func (q *Question) OptionText(label string) string {
	switch label {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

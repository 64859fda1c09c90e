package model

import "time"

// ExamResult is one row per submission attempt. Rows are append-only; the
// only mutation ever applied is an instructor's manual score/feedback
// override. The unique index on (student, quiz, attempt_no) is what makes
// the attempt limit race-proof: two in-flight submissions cannot both
// claim the same attempt slot.
// swagger:model ExamResult
type ExamResult struct {
	UUIDBase
	StudentID      uint              `gorm:"uniqueIndex:uq_attempt,priority:1;index;type:bigint unsigned" json:"studentId"`
	QuizID         uint              `gorm:"uniqueIndex:uq_attempt,priority:2;index;type:bigint unsigned" json:"quizId"`
	AttemptNo      int               `gorm:"uniqueIndex:uq_attempt,priority:3;not null" json:"attemptNo"`
	Answers        map[string]string `gorm:"serializer:json" json:"answers"`
	Score          int               `gorm:"not null" json:"score"` // 0-100 percentage
	CorrectCount   int               `gorm:"not null" json:"correctCount"`
	TotalQuestions int               `gorm:"not null" json:"totalQuestions"`
	Passed         bool              `gorm:"default:false" json:"passed"`
	ViolationCount int               `gorm:"default:0" json:"violationCount"` // client-reported, untrusted
	Feedback       string            `gorm:"type:text" json:"feedback"`
	SubmittedAt    time.Time         `gorm:"default:CURRENT_TIMESTAMP(3)" json:"submittedAt"`
}

func (ExamResult) TableName() string {
	return "exam_results"
}

// StudentAnswer holds in-progress autosave state for a quiz attempt,
// upserted on (student, question).
type StudentAnswer struct {
	BaseModel
	StudentID      uint   `gorm:"uniqueIndex:uq_student_answer;type:bigint unsigned" json:"studentId"`
	QuizID         uint   `gorm:"index;type:bigint unsigned" json:"quizId"`
	QuestionID     uint   `gorm:"uniqueIndex:uq_student_answer;type:bigint unsigned" json:"questionId"`
	SelectedAnswer string `gorm:"type:text" json:"selectedAnswer"`
}

func (StudentAnswer) TableName() string {
	return "student_answers"
}

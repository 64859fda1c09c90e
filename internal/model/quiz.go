package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	CourseID        uint   `gorm:"index;type:bigint unsigned" json:"courseId"`
	Title           string `gorm:"size:255;not null" json:"title"`
	DurationMinutes int    `gorm:"default:15" json:"durationMinutes"`
	MaxAttempts     int    `gorm:"default:1" json:"maxAttempts"`
	IsActive        bool   `gorm:"default:true" json:"isActive"` // students only see active quizzes
}

func (Quiz) TableName() string {
	return "quizzes"
}

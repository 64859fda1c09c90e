package model

// Course categories drive the XP difficulty multiplier, see internal/progression.
const (
	CategoryGeneral         = "General"
	CategoryBusiness        = "Business"
	CategoryComputerScience = "Computer Science"
	CategoryMathematics     = "Mathematics"
	CategoryEngineering     = "Engineering"
	CategoryIntermediate    = "Intermediate"
	CategoryAdvanced        = "Advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	InstructorID uint   `gorm:"index;type:bigint unsigned" json:"instructorId"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Category     string `gorm:"size:100;default:'General'" json:"category"`
}

func (Course) TableName() string {
	return "courses"
}

type Enrollment struct {
	BaseModel
	StudentID uint `gorm:"uniqueIndex:uq_enrollment;type:bigint unsigned" json:"studentId"`
	CourseID  uint `gorm:"uniqueIndex:uq_enrollment;type:bigint unsigned" json:"courseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

package model

import "time"

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	FullName     string   `gorm:"size:100;not null" json:"fullName"`
	Email        string   `gorm:"size:100;unique;not null" json:"email"`
	Password     string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"type:enum('student','instructor','admin');default:'student'" json:"role"`
	Points       int      `gorm:"default:0" json:"points"` // cumulative XP, mutated only by the progression engine
	Level        int      `gorm:"default:1" json:"level"`
	CurrentBadge string   `gorm:"size:50;default:'Novice'" json:"currentBadge"`
	Disabled     bool     `gorm:"default:false" json:"disabled"`
	LastLogin    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// StudentProfile carries the school-facing identity shown on reports.
type StudentProfile struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	StudentID  string `gorm:"size:50" json:"studentId"` // school ID, not the user PK
	Department string `gorm:"size:100" json:"department"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

type InstructorProfile struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	LecturerID string `gorm:"size:50" json:"lecturerId"`
	Department string `gorm:"size:100" json:"department"`
}

func (InstructorProfile) TableName() string {
	return "instructor_profiles"
}

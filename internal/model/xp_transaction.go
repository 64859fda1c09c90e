package model

// XPTransaction is the append-only audit trail for every XP award.
type XPTransaction struct {
	BaseModel
	StudentID uint   `gorm:"index;type:bigint unsigned" json:"studentId"`
	QuizID    uint   `gorm:"index;type:bigint unsigned" json:"quizId"`
	XPEarned  int    `gorm:"not null" json:"xpEarned"`
	Reason    string `gorm:"size:255" json:"reason"`
}

func (XPTransaction) TableName() string {
	return "xp_transactions"
}

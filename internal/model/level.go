package model

// Level is one row of the ascending XP threshold table. A user's level is
// always the highest row whose XPRequired does not exceed their points.
// swagger:model Level
type Level struct {
	BaseModel
	Level      int    `gorm:"uniqueIndex;not null" json:"level"`
	XPRequired int    `gorm:"not null" json:"xpRequired"`
	Badge      string `gorm:"size:50;not null" json:"badge"`
}

func (Level) TableName() string {
	return "levels"
}

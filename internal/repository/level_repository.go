package repository

import (
	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/progression"

	"gorm.io/gorm"
)

type LevelRepository struct {
	DB *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{DB: db}
}

func (r *LevelRepository) FindAllAscending() ([]model.Level, error) {
	var levels []model.Level
	err := r.DB.Order("level ASC").Find(&levels).Error
	return levels, err
}

// Thresholds loads the ladder in the progression engine's input form.
func (r *LevelRepository) Thresholds() ([]progression.Threshold, error) {
	levels, err := r.FindAllAscending()
	if err != nil {
		return nil, err
	}
	thresholds := make([]progression.Threshold, 0, len(levels))
	for _, l := range levels {
		thresholds = append(thresholds, progression.Threshold{
			Level:      l.Level,
			XPRequired: l.XPRequired,
			Badge:      l.Badge,
		})
	}
	return thresholds, nil
}

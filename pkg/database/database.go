package database

import (
	"fmt"
	"log"

	"github.com/Bright-ted/SkillTrack/internal/config"
	"github.com/Bright-ted/SkillTrack/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.InstructorProfile{},
		&model.Course{},
		&model.Enrollment{},
		&model.Quiz{},
		&model.Question{},
		&model.ExamResult{},
		&model.StudentAnswer{},
		&model.Level{},
		&model.XPTransaction{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// The progression engine needs at least one threshold row; seed the
	// default ladder on an empty table.
	var count int64
	db.Model(&model.Level{}).Count(&count)
	if count == 0 {
		defaultLevels := []model.Level{
			{Level: 1, XPRequired: 0, Badge: "Novice"},
			{Level: 2, XPRequired: 100, Badge: "Apprentice"},
			{Level: 3, XPRequired: 300, Badge: "Expert"},
			{Level: 4, XPRequired: 600, Badge: "Specialist"},
			{Level: 5, XPRequired: 1000, Badge: "Master"},
			{Level: 6, XPRequired: 1500, Badge: "Grandmaster"},
		}
		for _, l := range defaultLevels {
			db.Create(&l)
		}
	}

	return db, nil
}

// Seeds a demo dataset: one instructor, three students, a course with a
// quiz and a mixed set of questions. Intended for local development only.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"log"

	"github.com/Bright-ted/SkillTrack/internal/config"
	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/repository"
	"github.com/Bright-ted/SkillTrack/internal/service"
	"github.com/Bright-ted/SkillTrack/pkg/database"
	"github.com/Bright-ted/SkillTrack/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg)

	instructor, err := authService.Register(service.RegisterInput{
		FullName:   "Grace Mentor",
		Email:      "grace@demo.skilltrack.local",
		Password:   "demo-password-1",
		Role:       model.Instructor,
		SchoolID:   "LEC-001",
		Department: "Computer Science",
	})
	if err != nil {
		log.Fatalf("Failed to seed instructor: %v", err)
	}

	students := []service.RegisterInput{
		{FullName: "Ada Learner", Email: "ada@demo.skilltrack.local", Password: "demo-password-1", Role: model.Student, SchoolID: "STU-1001", Department: "Computer Science"},
		{FullName: "Ben Learner", Email: "ben@demo.skilltrack.local", Password: "demo-password-1", Role: model.Student, SchoolID: "STU-1002", Department: "Mathematics"},
		{FullName: "Cleo Learner", Email: "cleo@demo.skilltrack.local", Password: "demo-password-1", Role: model.Student, SchoolID: "STU-1003", Department: "Engineering"},
	}
	studentIDs := make([]uint, 0, len(students))
	for _, input := range students {
		user, err := authService.Register(input)
		if err != nil {
			log.Fatalf("Failed to seed student %s: %v", input.Email, err)
		}
		studentIDs = append(studentIDs, user.ID)
	}

	courseService := service.NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		userRepo,
	)

	course, err := courseService.CreateCourse(instructor.ID, service.CourseInput{
		Title:       "Introduction to Go",
		Description: "Syntax, tooling and the standard library.",
		Category:    model.CategoryComputerScience,
	})
	if err != nil {
		log.Fatalf("Failed to seed course: %v", err)
	}

	for _, id := range studentIDs {
		if err := courseService.Enroll(id, course.ID); err != nil {
			log.Fatalf("Failed to enroll student %d: %v", id, err)
		}
	}

	quiz, err := courseService.CreateQuiz(course.ID, instructor.ID, model.Instructor, service.QuizInput{
		Title:           "Basics Check",
		DurationMinutes: 20,
		MaxAttempts:     2,
	})
	if err != nil {
		log.Fatalf("Failed to seed quiz: %v", err)
	}

	questions := []service.QuestionInput{
		{
			QuestionType:  model.MCQ,
			QuestionText:  "Which keyword declares a variable with inferred type?",
			OptionA:       "var",
			OptionB:       ":=",
			OptionC:       "let",
			OptionD:       "def",
			CorrectOption: "B",
		},
		{
			QuestionType:  model.FillBlank,
			QuestionText:  "The command to run tests is `go ____`.",
			CorrectOption: "test",
		},
		{
			QuestionType: model.Theory,
			QuestionText: "Explain what a goroutine is.",
			Keywords:     "lightweight,concurrent",
		},
	}
	for _, q := range questions {
		if _, err := courseService.CreateQuestion(quiz.ID, instructor.ID, model.Instructor, q); err != nil {
			log.Fatalf("Failed to seed question: %v", err)
		}
	}

	log.Printf("Seeded course %d with quiz %d and %d students", course.ID, quiz.ID, len(studentIDs))
}

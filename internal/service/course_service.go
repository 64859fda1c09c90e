package service

import (
	"errors"

	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/repository"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	QuizRepo       *repository.QuizRepository
	QuestionRepo   *repository.QuestionRepository
	UserRepo       *repository.UserRepository
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	userRepo *repository.UserRepository,
) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		QuizRepo:       quizRepo,
		QuestionRepo:   questionRepo,
		UserRepo:       userRepo,
	}
}

func (s *CourseService) findCourse(courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// ownedCourse loads a course and verifies the caller teaches it. Admins
// bypass the ownership check.
func (s *CourseService) ownedCourse(courseID, callerID uint, role model.UserRole) (*model.Course, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, err
	}
	if role != model.Admin && course.InstructorID != callerID {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

// ownedQuiz resolves a quiz through its course's ownership.
func (s *CourseService) ownedQuiz(quizID, callerID uint, role model.UserRole) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	} else if err != nil {
		return nil, err
	}
	if _, err := s.ownedCourse(quiz.CourseID, callerID, role); err != nil {
		return nil, err
	}
	return quiz, nil
}

type CourseInput struct {
	Title       string
	Description string
	Category    string
}

func (s *CourseService) CreateCourse(instructorID uint, input CourseInput) (*model.Course, error) {
	category := input.Category
	if category == "" {
		category = model.CategoryGeneral
	}
	course := &model.Course{
		InstructorID: instructorID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     category,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) UpdateCourse(courseID, callerID uint, role model.UserRole, input CourseInput) (*model.Course, error) {
	course, err := s.ownedCourse(courseID, callerID, role)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		course.Title = input.Title
	}
	course.Description = input.Description
	if input.Category != "" {
		course.Category = input.Category
	}
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) InstructorCourses(instructorID uint) ([]model.Course, error) {
	return s.CourseRepo.FindByInstructor(instructorID)
}

// CourseDetail bundles a course with its quizzes. Students only see
// active quizzes; instructors and admins see everything including drafts.
func (s *CourseService) CourseDetail(courseID, callerID uint, role model.UserRole) (*model.Course, []model.Quiz, error) {
	course, err := s.findCourse(courseID)
	if err != nil {
		return nil, nil, err
	}

	var quizzes []model.Quiz
	if role == model.Student {
		quizzes, err = s.QuizRepo.FindActiveByCourse(courseID)
	} else {
		quizzes, err = s.QuizRepo.FindByCourse(courseID)
	}
	if err != nil {
		return nil, nil, err
	}
	return course, quizzes, nil
}

type QuizInput struct {
	Title           string
	DurationMinutes int
	MaxAttempts     int
	IsActive        *bool
}

func (s *CourseService) CreateQuiz(courseID, callerID uint, role model.UserRole, input QuizInput) (*model.Quiz, error) {
	if _, err := s.ownedCourse(courseID, callerID, role); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		CourseID:        courseID,
		Title:           input.Title,
		DurationMinutes: input.DurationMinutes,
		MaxAttempts:     input.MaxAttempts,
		IsActive:        true,
	}
	if quiz.DurationMinutes <= 0 {
		quiz.DurationMinutes = 15
	}
	if quiz.MaxAttempts <= 0 {
		quiz.MaxAttempts = 1
	}
	if input.IsActive != nil {
		quiz.IsActive = *input.IsActive
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *CourseService) UpdateQuiz(quizID, callerID uint, role model.UserRole, input QuizInput) (*model.Quiz, error) {
	quiz, err := s.ownedQuiz(quizID, callerID, role)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		quiz.Title = input.Title
	}
	if input.DurationMinutes > 0 {
		quiz.DurationMinutes = input.DurationMinutes
	}
	if input.MaxAttempts > 0 {
		quiz.MaxAttempts = input.MaxAttempts
	}
	if input.IsActive != nil {
		quiz.IsActive = *input.IsActive
	}
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *CourseService) DeleteQuiz(quizID, callerID uint, role model.UserRole) error {
	if _, err := s.ownedQuiz(quizID, callerID, role); err != nil {
		return err
	}
	return s.QuizRepo.Delete(quizID)
}

type QuestionInput struct {
	QuestionType  model.QuestionType
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption string
	Keywords      string
}

func (s *CourseService) CreateQuestion(quizID, callerID uint, role model.UserRole, input QuestionInput) (*model.Question, error) {
	if _, err := s.ownedQuiz(quizID, callerID, role); err != nil {
		return nil, err
	}

	question := &model.Question{
		QuizID:        quizID,
		QuestionType:  input.QuestionType,
		QuestionText:  input.QuestionText,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectOption: input.CorrectOption,
		Keywords:      input.Keywords,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

// UpdateQuestion edits a question in place. Already-graded attempts keep
// their stored scores; only the review rebuild sees the new key.
func (s *CourseService) UpdateQuestion(questionID, callerID uint, role model.UserRole, input QuestionInput) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	} else if err != nil {
		return nil, err
	}
	if _, err := s.ownedQuiz(question.QuizID, callerID, role); err != nil {
		return nil, err
	}

	question.QuestionType = input.QuestionType
	question.QuestionText = input.QuestionText
	question.OptionA = input.OptionA
	question.OptionB = input.OptionB
	question.OptionC = input.OptionC
	question.OptionD = input.OptionD
	question.CorrectOption = input.CorrectOption
	question.Keywords = input.Keywords

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *CourseService) DeleteQuestion(questionID, callerID uint, role model.UserRole) error {
	question, err := s.QuestionRepo.FindByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuestionNotFound
	} else if err != nil {
		return err
	}
	if _, err := s.ownedQuiz(question.QuizID, callerID, role); err != nil {
		return err
	}
	return s.QuestionRepo.Delete(questionID)
}

// QuizQuestions lists a quiz's questions with answer keys, for the
// instructor-side editor.
func (s *CourseService) QuizQuestions(quizID, callerID uint, role model.UserRole) (*model.Quiz, []model.Question, error) {
	quiz, err := s.ownedQuiz(quizID, callerID, role)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.QuestionRepo.FindByQuiz(quizID)
	if err != nil {
		return nil, nil, err
	}
	return quiz, questions, nil
}

func (s *CourseService) Enroll(studentID, courseID uint) error {
	if _, err := s.findCourse(courseID); err != nil {
		return err
	}
	enrolled, err := s.EnrollmentRepo.Exists(studentID, courseID)
	if err != nil {
		return err
	}
	if enrolled {
		return util.ErrAlreadyEnrolled
	}
	return s.EnrollmentRepo.Create(&model.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	})
}

func (s *CourseService) Drop(studentID, courseID uint) error {
	enrolled, err := s.EnrollmentRepo.Exists(studentID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return util.ErrNotEnrolled
	}
	return s.EnrollmentRepo.Delete(studentID, courseID)
}

func (s *CourseService) StudentCourses(studentID uint) ([]model.Course, error) {
	courseIDs, err := s.EnrollmentRepo.CourseIDsForStudent(studentID)
	if err != nil {
		return nil, err
	}
	return s.CourseRepo.FindByIDs(courseIDs)
}

// CourseRosterEntry is one enrolled student as the instructor sees them.
type CourseRosterEntry struct {
	UserID        uint   `json:"userId"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	StudentNumber string `json:"studentNumber"`
}

// CourseRoster lists the enrolled students for an owned course, with their
// school registration numbers where a profile exists.
func (s *CourseService) CourseRoster(courseID, callerID uint, role model.UserRole) ([]CourseRosterEntry, error) {
	if _, err := s.ownedCourse(courseID, callerID, role); err != nil {
		return nil, err
	}

	enrollments, err := s.EnrollmentRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}

	studentIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		studentIDs = append(studentIDs, e.StudentID)
	}

	users, err := s.UserRepo.FindByIDs(studentIDs)
	if err != nil {
		return nil, err
	}
	numbers, err := s.UserRepo.StudentNumbersByUserIDs(studentIDs)
	if err != nil {
		return nil, err
	}

	roster := make([]CourseRosterEntry, 0, len(users))
	for _, u := range users {
		roster = append(roster, CourseRosterEntry{
			UserID:        u.ID,
			FullName:      u.FullName,
			Email:         u.Email,
			StudentNumber: numbers[u.ID],
		})
	}
	return roster, nil
}

// SearchCatalogue finds courses a student can still join, excluding the
// ones they are already enrolled in.
func (s *CourseService) SearchCatalogue(studentID uint, titleQuery string) ([]model.Course, error) {
	enrolledIDs, err := s.EnrollmentRepo.CourseIDsForStudent(studentID)
	if err != nil {
		return nil, err
	}
	return s.CourseRepo.Search(titleQuery, enrolledIDs)
}

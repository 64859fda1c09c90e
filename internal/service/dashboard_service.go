package service

import (
	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/repository"
)

type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	QuizRepo       *repository.QuizRepository
	ResultRepo     *repository.ExamResultRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	quizRepo *repository.QuizRepository,
	resultRepo *repository.ExamResultRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		QuizRepo:       quizRepo,
		ResultRepo:     resultRepo,
	}
}

// InstructorStats is the instructor home screen summary.
type InstructorStats struct {
	CourseCount    int64              `json:"courseCount"`
	StudentCount   int64              `json:"studentCount"`
	AverageScore   int                `json:"averageScore"`
	RecentActivity []model.ExamResult `json:"recentActivity"`
}

func (s *DashboardService) InstructorDashboard(instructorID uint) (*InstructorStats, error) {
	courseCount, err := s.CourseRepo.CountByInstructor(instructorID)
	if err != nil {
		return nil, err
	}
	studentCount, err := s.UserRepo.CountByRole(model.Student)
	if err != nil {
		return nil, err
	}
	avg, err := s.ResultRepo.AverageScore()
	if err != nil {
		return nil, err
	}
	recent, err := s.ResultRepo.FindRecent(3)
	if err != nil {
		return nil, err
	}

	return &InstructorStats{
		CourseCount:    courseCount,
		StudentCount:   studentCount,
		AverageScore:   avg,
		RecentActivity: recent,
	}, nil
}

// StudentDashboard is the student home screen: progression status, global
// rank, enrolled courses, and the joinable catalogue.
type StudentDashboard struct {
	Points       int            `json:"points"`
	Level        int            `json:"level"`
	Badge        string         `json:"badge"`
	GlobalRank   int64          `json:"globalRank"`
	MyCourses    []model.Course `json:"myCourses"`
	Catalogue    []model.Course `json:"catalogue"`
	QuizzesTaken int            `json:"quizzesTaken"`
}

func (s *DashboardService) StudentHome(studentID uint, searchQuery string) (*StudentDashboard, error) {
	user, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}

	ahead, err := s.UserRepo.CountWithMorePoints(user.Points)
	if err != nil {
		return nil, err
	}

	enrolledIDs, err := s.EnrollmentRepo.CourseIDsForStudent(studentID)
	if err != nil {
		return nil, err
	}
	myCourses, err := s.CourseRepo.FindByIDs(enrolledIDs)
	if err != nil {
		return nil, err
	}
	catalogue, err := s.CourseRepo.Search(searchQuery, enrolledIDs)
	if err != nil {
		return nil, err
	}

	results, err := s.ResultRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}

	return &StudentDashboard{
		Points:       user.Points,
		Level:        user.Level,
		Badge:        user.CurrentBadge,
		GlobalRank:   ahead + 1,
		MyCourses:    myCourses,
		Catalogue:    catalogue,
		QuizzesTaken: len(results),
	}, nil
}

// GradeHistoryEntry is one row of the student's own grades page.
type GradeHistoryEntry struct {
	Result    model.ExamResult `json:"result"`
	QuizTitle string           `json:"quizTitle"`
}

func (s *DashboardService) GradeHistory(studentID uint) ([]GradeHistoryEntry, error) {
	results, err := s.ResultRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}

	titles := make(map[uint]string)
	entries := make([]GradeHistoryEntry, 0, len(results))
	for _, r := range results {
		title, ok := titles[r.QuizID]
		if !ok {
			if quiz, err := s.QuizRepo.FindByID(r.QuizID); err == nil {
				title = quiz.Title
			}
			titles[r.QuizID] = title
		}
		entries = append(entries, GradeHistoryEntry{Result: r, QuizTitle: title})
	}
	return entries, nil
}

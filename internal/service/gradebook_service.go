package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Bright-ted/SkillTrack/internal/config"
	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/repository"
	"github.com/Bright-ted/SkillTrack/internal/util"
	"github.com/Bright-ted/SkillTrack/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const leaderboardCacheTTL = 60 * time.Second

type GradebookService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	QuizRepo       *repository.QuizRepository
	ResultRepo     *repository.ExamResultRepository
	UserRepo       *repository.UserRepository
	Cache          *redis.Client
	Storage        StorageProvider
	Cfg            *config.Config
}

func NewGradebookService(
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	quizRepo *repository.QuizRepository,
	resultRepo *repository.ExamResultRepository,
	userRepo *repository.UserRepository,
	cache *redis.Client,
	storage StorageProvider,
	cfg *config.Config,
) *GradebookService {
	return &GradebookService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		QuizRepo:       quizRepo,
		ResultRepo:     resultRepo,
		UserRepo:       userRepo,
		Cache:          cache,
		Storage:        storage,
		Cfg:            cfg,
	}
}

func (s *GradebookService) ownedCourse(courseID, callerID uint, role model.UserRole) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}
	if role != model.Admin && course.InstructorID != callerID {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

// LeaderboardEntry is one ranked row of a course leaderboard.
type LeaderboardEntry struct {
	UserID       uint   `json:"userId"`
	FullName     string `json:"fullName"`
	QuizzesTaken int    `json:"quizzesTaken"`
	AverageScore int    `json:"averageScore"`
	TotalScore   int    `json:"totalScore"`
	Rank         int    `json:"rank"`
}

// CourseLeaderboard ranks the enrolled students of a course by rounded
// average score over all their attempts, descending. Ties keep enrollment
// order; students with no attempts sit at the bottom with zeroes. The
// computed board is cached for a minute since it backs a frequently
// polled widget.
func (s *GradebookService) CourseLeaderboard(ctx context.Context, courseID uint) ([]LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("leaderboard:course:%d", courseID)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var board []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &board) == nil {
				return board, nil
			}
		}
	}

	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	enrollments, err := s.EnrollmentRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}
	quizIDs, err := s.QuizRepo.IDsForCourse(courseID)
	if err != nil {
		return nil, err
	}
	results, err := s.ResultRepo.FindByQuizIDs(quizIDs)
	if err != nil {
		return nil, err
	}

	type tally struct {
		attempts int
		total    int
	}
	tallies := make(map[uint]*tally, len(enrollments))
	studentIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		tallies[e.StudentID] = &tally{}
		studentIDs = append(studentIDs, e.StudentID)
	}
	for _, r := range results {
		if t, ok := tallies[r.StudentID]; ok {
			t.attempts++
			t.total += r.Score
		}
	}

	users, err := s.UserRepo.FindByIDs(studentIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}

	board := make([]LeaderboardEntry, 0, len(studentIDs))
	for _, id := range studentIDs {
		t := tallies[id]
		entry := LeaderboardEntry{
			UserID:       id,
			FullName:     names[id],
			QuizzesTaken: t.attempts,
			TotalScore:   t.total,
		}
		if t.attempts > 0 {
			entry.AverageScore = int(float64(t.total)/float64(t.attempts) + 0.5)
		}
		board = append(board, entry)
	}

	board = rankLeaderboard(board)

	if s.Cache != nil {
		if encoded, err := json.Marshal(board); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, encoded, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache leaderboard", zap.Error(err))
			}
		}
	}

	return board, nil
}

// rankLeaderboard orders entries by average score descending and assigns
// ranks. Stable keeps tied students in input order; no secondary key is
// defined for ties. Zero-attempt students carry average 0 and land at the
// bottom.
func rankLeaderboard(board []LeaderboardEntry) []LeaderboardEntry {
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].AverageScore > board[j].AverageScore
	})
	for i := range board {
		board[i].Rank = i + 1
	}
	return board
}

// ExportCSV renders the matrix gradebook for a course: one row per
// enrolled student, one column per quiz (best score, missing attempts
// count as 0), then the average over all quizzes and the scaled
// continuous-assessment mark. caTarget <= 0 falls back to the configured
// default. The bytes are returned for inline download and, when a storage
// provider is configured, archived as a side effect.
func (s *GradebookService) ExportCSV(ctx context.Context, courseID, callerID uint, role model.UserRole, caTarget int) (string, []byte, error) {
	course, err := s.ownedCourse(courseID, callerID, role)
	if err != nil {
		return "", nil, err
	}
	if caTarget <= 0 {
		caTarget = s.Cfg.Report.DefaultCATarget
	}

	quizzes, err := s.QuizRepo.FindByCourseOldestFirst(courseID)
	if err != nil {
		return "", nil, err
	}
	enrollments, err := s.EnrollmentRepo.FindByCourse(courseID)
	if err != nil {
		return "", nil, err
	}

	studentIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		studentIDs = append(studentIDs, e.StudentID)
	}
	users, err := s.UserRepo.FindByIDs(studentIDs)
	if err != nil {
		return "", nil, err
	}
	numbers, err := s.UserRepo.StudentNumbersByUserIDs(studentIDs)
	if err != nil {
		return "", nil, err
	}

	quizIDs := make([]uint, 0, len(quizzes))
	for _, q := range quizzes {
		quizIDs = append(quizIDs, q.ID)
	}
	results, err := s.ResultRepo.FindByQuizIDs(quizIDs)
	if err != nil {
		return "", nil, err
	}

	// Best score per (student, quiz).
	best := make(map[uint]map[uint]int)
	for _, r := range results {
		if best[r.StudentID] == nil {
			best[r.StudentID] = make(map[uint]int)
		}
		if r.Score > best[r.StudentID][r.QuizID] {
			best[r.StudentID][r.QuizID] = r.Score
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(gradebookRows(quizzes, users, numbers, best, caTarget)); err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("%s_gradebook_%s.csv",
		slugify(course.Title), time.Now().Format("20060102"))

	if s.Storage != nil {
		if _, err := s.Storage.Save(ctx, filename, buf.Bytes(), "text/csv"); err != nil {
			logger.Log.Warn("failed to archive gradebook export",
				zap.Uint("courseID", courseID), zap.Error(err))
		}
	}

	return filename, buf.Bytes(), nil
}

// gradebookRows builds the CSV matrix: header, then one row per student.
// Students without a profile row export their ID as "N/A", and the average
// column carries a percent sign for the spreadsheet consumers.
func gradebookRows(quizzes []model.Quiz, users []model.User, numbers map[uint]string, best map[uint]map[uint]int, caTarget int) [][]string {
	header := []string{"Student Name", "ID"}
	for _, q := range quizzes {
		header = append(header, q.Title)
	}
	header = append(header, "Average %", fmt.Sprintf("Final CA (/%d)", caTarget))

	rows := [][]string{header}
	for _, u := range users {
		number := numbers[u.ID]
		if number == "" {
			number = "N/A"
		}
		row := []string{u.FullName, number}
		total := 0
		for _, q := range quizzes {
			score := best[u.ID][q.ID]
			total += score
			row = append(row, strconv.Itoa(score))
		}
		avg := 0.0
		if len(quizzes) > 0 {
			avg = float64(total) / float64(len(quizzes))
		}
		ca := int(avg/100*float64(caTarget) + 0.5)
		row = append(row, fmt.Sprintf("%d%%", int(avg+0.5)), strconv.Itoa(ca))
		rows = append(rows, row)
	}
	return rows
}

func slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "course"
	}
	return b.String()
}

// ReportEntry is one row of the instructor's submissions feed.
type ReportEntry struct {
	ResultID       string    `json:"resultId"`
	StudentName    string    `json:"studentName"`
	QuizTitle      string    `json:"quizTitle"`
	Score          int       `json:"score"`
	Passed         bool      `json:"passed"`
	AttemptNo      int       `json:"attemptNo"`
	ViolationCount int       `json:"violationCount"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// InstructorReports lists every submission across the instructor's
// courses, newest first.
func (s *GradebookService) InstructorReports(instructorID uint) ([]ReportEntry, error) {
	quizIDs, err := s.QuizRepo.IDsForInstructor(instructorID)
	if err != nil {
		return nil, err
	}
	results, err := s.ResultRepo.FindByQuizIDs(quizIDs)
	if err != nil {
		return nil, err
	}
	return s.toReportEntries(results)
}

func (s *GradebookService) toReportEntries(results []model.ExamResult) ([]ReportEntry, error) {
	studentIDs := make([]uint, 0, len(results))
	quizIDs := make([]uint, 0, len(results))
	seenStudent := make(map[uint]bool)
	seenQuiz := make(map[uint]bool)
	for _, r := range results {
		if !seenStudent[r.StudentID] {
			seenStudent[r.StudentID] = true
			studentIDs = append(studentIDs, r.StudentID)
		}
		if !seenQuiz[r.QuizID] {
			seenQuiz[r.QuizID] = true
			quizIDs = append(quizIDs, r.QuizID)
		}
	}

	users, err := s.UserRepo.FindByIDs(studentIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}

	titles := make(map[uint]string, len(quizIDs))
	for _, id := range quizIDs {
		quiz, err := s.QuizRepo.FindByID(id)
		if err != nil {
			continue
		}
		titles[id] = quiz.Title
	}

	entries := make([]ReportEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, ReportEntry{
			ResultID:       r.ID,
			StudentName:    names[r.StudentID],
			QuizTitle:      titles[r.QuizID],
			Score:          r.Score,
			Passed:         r.Passed,
			AttemptNo:      r.AttemptNo,
			ViolationCount: r.ViolationCount,
			SubmittedAt:    r.SubmittedAt,
		})
	}
	return entries, nil
}

// QuizResultGroup is one student's attempts at one quiz.
type QuizResultGroup struct {
	StudentID   uint               `json:"studentId"`
	StudentName string             `json:"studentName"`
	BestScore   int                `json:"bestScore"`
	Attempts    []model.ExamResult `json:"attempts"`
}

// QuizResults groups a quiz's submissions per student with each student's
// best score, for the instructor's per-quiz results screen.
func (s *GradebookService) QuizResults(quizID, callerID uint, role model.UserRole) ([]QuizResultGroup, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	} else if err != nil {
		return nil, err
	}
	if _, err := s.ownedCourse(quiz.CourseID, callerID, role); err != nil {
		return nil, err
	}

	results, err := s.ResultRepo.FindByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	order := make([]uint, 0)
	groups := make(map[uint]*QuizResultGroup)
	for _, r := range results {
		g, ok := groups[r.StudentID]
		if !ok {
			g = &QuizResultGroup{StudentID: r.StudentID}
			groups[r.StudentID] = g
			order = append(order, r.StudentID)
		}
		g.Attempts = append(g.Attempts, r)
		if r.Score > g.BestScore {
			g.BestScore = r.Score
		}
	}

	users, err := s.UserRepo.FindByIDs(order)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if g, ok := groups[u.ID]; ok {
			g.StudentName = u.FullName
		}
	}

	out := make([]QuizResultGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out, nil
}

// ManualGrade overrides a stored result's score and feedback. Score is
// clamped to 0..100; the pass flag is re-derived from the new score.
func (s *GradebookService) ManualGrade(resultID string, callerID uint, role model.UserRole, score int, feedback string) (*model.ExamResult, error) {
	result, err := s.ResultRepo.FindByID(resultID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	} else if err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByID(result.QuizID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCourse(quiz.CourseID, callerID, role); err != nil {
		return nil, err
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	if err := s.ResultRepo.OverrideGrade(resultID, score, feedback); err != nil {
		return nil, err
	}
	return s.ResultRepo.FindByID(resultID)
}

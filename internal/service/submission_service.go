package service

import (
	"errors"
	"strconv"

	"github.com/Bright-ted/SkillTrack/internal/grading"
	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/progression"
	"github.com/Bright-ted/SkillTrack/internal/repository"
	"github.com/Bright-ted/SkillTrack/internal/util"
	"github.com/Bright-ted/SkillTrack/pkg/logger"
	"github.com/Bright-ted/SkillTrack/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubmissionService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	ResultRepo   *repository.ExamResultRepository
	AnswerRepo   *repository.StudentAnswerRepository
	Progression  *ProgressionService
}

func NewSubmissionService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	resultRepo *repository.ExamResultRepository,
	answerRepo *repository.StudentAnswerRepository,
	progression *ProgressionService,
) *SubmissionService {
	return &SubmissionService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		ResultRepo:   resultRepo,
		AnswerRepo:   answerRepo,
		Progression:  progression,
	}
}

// StartInfo is what the pre-attempt screen shows: the quiz metadata and
// the advisory gate decision.
type StartInfo struct {
	Quiz     *model.Quiz      `json:"quiz"`
	Decision grading.Decision `json:"decision"`
}

// SubmissionOutcome is everything the result screen needs.
type SubmissionOutcome struct {
	Result *model.ExamResult        `json:"result"`
	Review []grading.QuestionReview `json:"review"`
	Award  *progression.Award       `json:"award,omitempty"`
}

func (s *SubmissionService) findQuiz(quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

// StartQuiz runs the advisory attempt gate for the pre-attempt screen.
func (s *SubmissionService) StartQuiz(studentID, quizID uint) (*StartInfo, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}

	past, err := s.ResultRepo.FindByStudentAndQuiz(studentID, quizID)
	if err != nil {
		return nil, err
	}

	return &StartInfo{
		Quiz:     quiz,
		Decision: grading.CanAttempt(toAttemptRecords(past), quiz.MaxAttempts),
	}, nil
}

// AttemptQuestion is a question as shown to a student mid-attempt: prompt
// and options only, never the answer key.
type AttemptQuestion struct {
	ID           uint               `json:"id"`
	QuestionType model.QuestionType `json:"questionType"`
	Content      string             `json:"content"`
	Options      []AttemptOption    `json:"options"`
}

type AttemptOption struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// AttemptView loads the quiz paper, with any autosaved answers so a
// reloaded page resumes where the student left off.
func (s *SubmissionService) AttemptView(studentID, quizID uint) (*model.Quiz, []AttemptQuestion, map[string]string, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !quiz.IsActive {
		return nil, nil, nil, util.ErrQuizInactive
	}

	rows, err := s.QuestionRepo.FindByQuiz(quizID)
	if err != nil {
		return nil, nil, nil, err
	}

	questions := make([]AttemptQuestion, 0, len(rows))
	for i := range rows {
		q := &rows[i]
		aq := AttemptQuestion{
			ID:           q.ID,
			QuestionType: q.QuestionType,
			Content:      q.QuestionText,
			Options:      []AttemptOption{},
		}
		if q.QuestionType == model.MCQ {
			aq.Options = []AttemptOption{
				{ID: "A", Content: q.OptionA},
				{ID: "B", Content: q.OptionB},
				{ID: "C", Content: q.OptionC},
				{ID: "D", Content: q.OptionD},
			}
		}
		questions = append(questions, aq)
	}

	saved, err := s.AnswerRepo.FindByStudentAndQuiz(studentID, quizID)
	if err != nil {
		return nil, nil, nil, err
	}
	savedMap := make(map[string]string, len(saved))
	for _, a := range saved {
		savedMap[strconv.FormatUint(uint64(a.QuestionID), 10)] = a.SelectedAnswer
	}

	return quiz, questions, savedMap, nil
}

// SaveProgress upserts one autosave batch. Malformed question IDs are
// skipped rather than failing the batch.
func (s *SubmissionService) SaveProgress(studentID, quizID uint, answers map[string]string) error {
	for qid, value := range answers {
		id, err := strconv.ParseUint(qid, 10, 64)
		if err != nil {
			continue
		}
		if err := s.AnswerRepo.Upsert(&model.StudentAnswer{
			StudentID:      studentID,
			QuizID:         quizID,
			QuestionID:     uint(id),
			SelectedAnswer: value,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Submit grades an attempt end to end: gate, grade, persist the result
// with an atomically reserved attempt slot, then award XP. A progression
// failure is logged and swallowed: the graded result must survive even
// when the XP update cannot be applied.
func (s *SubmissionService) Submit(studentID, quizID uint, answers map[string]string, violationCount int) (*SubmissionOutcome, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}

	past, err := s.ResultRepo.FindByStudentAndQuiz(studentID, quizID)
	if err != nil {
		return nil, err
	}
	records := toAttemptRecords(past)
	if decision := grading.CanAttempt(records, quiz.MaxAttempts); !decision.Allowed {
		monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
		// Lockout takes priority over exhaustion, same order as the gate.
		for _, r := range records {
			if r.ViolationCount > 0 {
				return nil, util.ErrQuizLocked
			}
		}
		return nil, util.ErrAttemptsExhausted
	}

	rows, err := s.QuestionRepo.FindByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	graded := grading.Grade(grading.ToQuestions(rows), parseAnswerKeys(answers))

	result := &model.ExamResult{
		StudentID:      studentID,
		QuizID:         quizID,
		Answers:        answers,
		Score:          graded.ScorePercent,
		CorrectCount:   graded.CorrectCount,
		TotalQuestions: graded.TotalQuestions,
		Passed:         graded.Passed(),
		ViolationCount: violationCount,
	}
	if err := s.ResultRepo.CreateAttempt(result, quiz.MaxAttempts); err != nil {
		if errors.Is(err, util.ErrAttemptsExhausted) {
			monitoring.SubmissionCounter.WithLabelValues("rejected").Inc()
		}
		return nil, err
	}

	if graded.Passed() {
		monitoring.SubmissionCounter.WithLabelValues("passed").Inc()
	} else {
		monitoring.SubmissionCounter.WithLabelValues("failed").Inc()
	}

	outcome := &SubmissionOutcome{Result: result, Review: graded.Review}

	award, err := s.Progression.Award(studentID, quiz, graded.ScorePercent)
	if err != nil {
		logger.Log.Error("XP award failed, result kept without progression",
			zap.Uint("studentID", studentID),
			zap.Uint("quizID", quizID),
			zap.Error(err))
	} else {
		outcome.Award = award
	}

	// Autosave rows have served their purpose.
	if err := s.AnswerRepo.ClearForQuiz(studentID, quizID); err != nil {
		logger.Log.Warn("failed to clear autosaved answers", zap.Error(err))
	}

	return outcome, nil
}

// ResultReview rebuilds the per-question breakdown for a stored result
// against the quiz's current questions. Questions edited since the attempt
// are reviewed as they are now; past scores are never re-graded.
func (s *SubmissionService) ResultReview(resultID string) (*model.ExamResult, []grading.QuestionReview, error) {
	result, err := s.ResultRepo.FindByID(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrResultNotFound
		}
		return nil, nil, err
	}

	rows, err := s.QuestionRepo.FindByQuiz(result.QuizID)
	if err != nil {
		return nil, nil, err
	}

	graded := grading.Grade(grading.ToQuestions(rows), parseAnswerKeys(result.Answers))
	return result, graded.Review, nil
}

func toAttemptRecords(results []model.ExamResult) []grading.AttemptRecord {
	records := make([]grading.AttemptRecord, 0, len(results))
	for _, r := range results {
		records = append(records, grading.AttemptRecord{ViolationCount: r.ViolationCount})
	}
	return records
}

// parseAnswerKeys converts the wire's string-keyed answer map to question
// IDs, dropping entries that are not numeric (malformed payloads degrade
// to unanswered).
func parseAnswerKeys(answers map[string]string) map[uint]string {
	parsed := make(map[uint]string, len(answers))
	for k, v := range answers {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		parsed[uint(id)] = v
	}
	return parsed
}

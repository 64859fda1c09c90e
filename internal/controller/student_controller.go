package controller

import (
	"errors"
	"net/http"

	"github.com/Bright-ted/SkillTrack/internal/service"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	CourseService     *service.CourseService
	SubmissionService *service.SubmissionService
	DashboardService  *service.DashboardService
}

func NewStudentController(
	courseService *service.CourseService,
	submissionService *service.SubmissionService,
	dashboardService *service.DashboardService,
) *StudentController {
	return &StudentController{
		CourseService:     courseService,
		SubmissionService: submissionService,
		DashboardService:  dashboardService,
	}
}

// Dashboard godoc
// @Summary Student home screen
// @Description Points, badge, global rank, enrolled courses and joinable catalogue
// @Tags students
// @Produce  json
// @Param   q query string false "Catalogue title search"
// @Success 200 {object} util.Response{data=service.StudentDashboard}
// @Router /api/student/dashboard [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	dashboard, err := c.DashboardService.StudentHome(claims.UserID, ctx.Query("q"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// Enroll godoc
// @Summary Join a course
// @Tags students
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response "Course not found"
// @Failure 409 {object} util.Response "Already enrolled"
// @Router /api/student/courses/{id}/enroll [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	courseID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.CourseService.Enroll(claims.UserID, courseID); err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.Error(ctx, http.StatusConflict, "You are already enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, nil)
}

// Drop godoc
// @Summary Leave a course
// @Tags students
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not enrolled"
// @Router /api/student/courses/{id}/enroll [delete]
func (c *StudentController) Drop(ctx *gin.Context) {
	courseID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.CourseService.Drop(claims.UserID, courseID); err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx, "You are not enrolled in this course")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// MyCourses godoc
// @Summary Courses the student is enrolled in
// @Tags students
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/student/courses [get]
func (c *StudentController) MyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	courses, err := c.CourseService.StudentCourses(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GradeHistory godoc
// @Summary The student's own past results
// @Tags students
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.GradeHistoryEntry}
// @Router /api/student/grades [get]
func (c *StudentController) GradeHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	entries, err := c.DashboardService.GradeHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// mapQuizError handles the quiz-taking sentinels shared by the flow below.
func mapQuizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx, "Quiz not found")
	case errors.Is(err, util.ErrQuizInactive):
		util.Forbidden(ctx, "This quiz is not currently open")
	case errors.Is(err, util.ErrQuizLocked):
		util.Forbidden(ctx, "You are blocked from retaking this quiz due to suspicious activity in a previous attempt.")
	case errors.Is(err, util.ErrAttemptsExhausted):
		util.Forbidden(ctx, "You have used all attempts allowed for this quiz.")
	case errors.Is(err, util.ErrResultNotFound):
		util.NotFound(ctx, "Result not found")
	default:
		util.LogInternalError(ctx, err)
	}
}

// StartQuiz godoc
// @Summary Pre-attempt screen
// @Description Quiz metadata plus the advisory attempt-gate decision
// @Tags attempts
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=service.StartInfo}
// @Failure 404 {object} util.Response "Quiz not found"
// @Router /api/student/quizzes/{id}/start [get]
func (c *StudentController) StartQuiz(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	info, err := c.SubmissionService.StartQuiz(claims.UserID, quizID)
	if err != nil {
		mapQuizError(ctx, err)
		return
	}
	util.Success(ctx, info)
}

// AttemptView godoc
// @Summary The quiz paper
// @Description Questions without answer keys, plus any autosaved answers
// @Tags attempts
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response "Quiz not open"
// @Router /api/student/quizzes/{id}/attempt [get]
func (c *StudentController) AttemptView(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	quiz, questions, saved, err := c.SubmissionService.AttemptView(claims.UserID, quizID)
	if err != nil {
		mapQuizError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"quiz":         quiz,
		"questions":    questions,
		"savedAnswers": saved,
	})
}

// swagger:model SaveProgressRequest
type SaveProgressRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// SaveProgress godoc
// @Summary Autosave in-progress answers
// @Tags attempts
// @Accept  json
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Param   body body SaveProgressRequest true "Answers so far"
// @Success 200 {object} util.Response
// @Router /api/student/quizzes/{id}/progress [put]
func (c *StudentController) SaveProgress(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}
	var req SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.SubmissionService.SaveProgress(claims.UserID, quizID, req.Answers); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	Answers        map[string]string `json:"answers" binding:"required"`
	ViolationCount int               `json:"violationCount"`
}

// Submit godoc
// @Summary Submit an attempt for grading
// @Description Grades, reserves an attempt slot and awards XP
// @Tags attempts
// @Accept  json
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Param   body body SubmitRequest true "Submitted answers and violation telemetry"
// @Success 201 {object} util.Response{data=service.SubmissionOutcome}
// @Failure 403 {object} util.Response "Locked out or attempts exhausted"
// @Router /api/student/quizzes/{id}/submit [post]
func (c *StudentController) Submit(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.ViolationCount < 0 {
		req.ViolationCount = 0
	}

	claims := util.GetUserFromContext(ctx)
	outcome, err := c.SubmissionService.Submit(claims.UserID, quizID, req.Answers, req.ViolationCount)
	if err != nil {
		mapQuizError(ctx, err)
		return
	}
	util.Created(ctx, outcome)
}

// ResultReview godoc
// @Summary Per-question breakdown of a stored result
// @Tags attempts
// @Produce  json
// @Param   id path string true "Result ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Result not found"
// @Router /api/student/results/{id} [get]
func (c *StudentController) ResultReview(ctx *gin.Context) {
	resultID := ctx.Param("id")
	if resultID == "" {
		util.BadRequest(ctx, "Invalid result ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, review, err := c.SubmissionService.ResultReview(resultID)
	if err != nil {
		mapQuizError(ctx, err)
		return
	}
	// Students may only read their own results.
	if result.StudentID != claims.UserID {
		util.Forbidden(ctx, "")
		return
	}
	util.Success(ctx, gin.H{"result": result, "review": review})
}

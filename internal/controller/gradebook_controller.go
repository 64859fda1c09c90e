package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Bright-ted/SkillTrack/internal/service"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"github.com/gin-gonic/gin"
)

type GradebookController struct {
	GradebookService  *service.GradebookService
	SubmissionService *service.SubmissionService
}

func NewGradebookController(
	gradebookService *service.GradebookService,
	submissionService *service.SubmissionService,
) *GradebookController {
	return &GradebookController{
		GradebookService:  gradebookService,
		SubmissionService: submissionService,
	}
}

// Leaderboard godoc
// @Summary Course leaderboard
// @Description Enrolled students ranked by average score, cached briefly
// @Tags gradebook
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/leaderboard [get]
func (c *GradebookController) Leaderboard(ctx *gin.Context) {
	courseID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	board, err := c.GradebookService.CourseLeaderboard(ctx.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "Course not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, board)
}

// ExportCSV godoc
// @Summary Download the matrix gradebook CSV
// @Description One row per student, one column per quiz, average and scaled CA
// @Tags gradebook
// @Produce  text/csv
// @Param   id path int true "Course ID"
// @Param   ca query int false "CA target scale (default 40)"
// @Success 200 {string} string "CSV body"
// @Failure 403 {object} util.Response "Not the course owner"
// @Router /api/instructor/courses/{id}/export [get]
func (c *GradebookController) ExportCSV(ctx *gin.Context) {
	courseID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}
	caTarget := 0
	if raw := ctx.Query("ca"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			util.BadRequest(ctx, "ca must be a positive integer")
			return
		}
		caTarget = parsed
	}

	claims := util.GetUserFromContext(ctx)
	filename, data, err := c.GradebookService.ExportCSV(ctx.Request.Context(), courseID, claims.UserID, claims.Role, caTarget)
	if err != nil {
		mapCourseError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv", data)
}

// Reports godoc
// @Summary Submission feed for the instructor's courses
// @Tags gradebook
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.ReportEntry}
// @Router /api/instructor/reports [get]
func (c *GradebookController) Reports(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	entries, err := c.GradebookService.InstructorReports(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// QuizResults godoc
// @Summary A quiz's submissions grouped per student
// @Tags gradebook
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=[]service.QuizResultGroup}
// @Failure 403 {object} util.Response "Not the course owner"
// @Router /api/instructor/quizzes/{id}/results [get]
func (c *GradebookController) QuizResults(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	groups, err := c.GradebookService.QuizResults(quizID, claims.UserID, claims.Role)
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// swagger:model ManualGradeRequest
type ManualGradeRequest struct {
	Score    int    `json:"score" binding:"min=0,max=100"`
	Feedback string `json:"feedback"`
}

// ManualGrade godoc
// @Summary Override a stored result's score
// @Tags gradebook
// @Accept  json
// @Produce  json
// @Param   id path string true "Result ID"
// @Param   body body ManualGradeRequest true "New score and feedback"
// @Success 200 {object} util.Response{data=model.ExamResult}
// @Failure 404 {object} util.Response "Result not found"
// @Router /api/instructor/results/{id}/grade [put]
func (c *GradebookController) ManualGrade(ctx *gin.Context) {
	resultID := ctx.Param("id")
	if resultID == "" {
		util.BadRequest(ctx, "Invalid result ID")
		return
	}
	var req ManualGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	result, err := c.GradebookService.ManualGrade(resultID, claims.UserID, claims.Role, req.Score, req.Feedback)
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx, "Result not found")
		} else {
			mapCourseError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// AttemptReview godoc
// @Summary Per-question review of any attempt
// @Description Instructor-side review of a student's attempt
// @Tags gradebook
// @Produce  json
// @Param   id path string true "Result ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Result not found"
// @Router /api/instructor/results/{id} [get]
func (c *GradebookController) AttemptReview(ctx *gin.Context) {
	resultID := ctx.Param("id")
	if resultID == "" {
		util.BadRequest(ctx, "Invalid result ID")
		return
	}

	result, review, err := c.SubmissionService.ResultReview(resultID)
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx, "Result not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"result": result, "review": review})
}

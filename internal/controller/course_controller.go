package controller

import (
	"errors"

	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/internal/service"
	"github.com/Bright-ted/SkillTrack/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// mapCourseError translates service sentinels into HTTP responses.
func mapCourseError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "Course not found")
	case errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx, "Quiz not found")
	case errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx, "Question not found")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, "You do not manage this course")
	default:
		util.LogInternalError(ctx, err)
	}
}

// swagger:model CourseRequest
type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Param   body body CourseRequest true "Course fields"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response "Invalid request body"
// @Router /api/instructor/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	course, err := c.CourseService.CreateCourse(claims.UserID, service.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Edit a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Param   id path int true "Course ID"
// @Param   body body CourseRequest true "Course fields"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response "Not the course owner"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/instructor/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	courseID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	course, err := c.CourseService.UpdateCourse(courseID, claims.UserID, claims.Role, service.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// MyCourses godoc
// @Summary List the instructor's courses
// @Tags courses
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/instructor/courses [get]
func (c *CourseController) MyCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	courses, err := c.CourseService.InstructorCourses(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// CourseDetail godoc
// @Summary Course detail with quizzes
// @Description Students see active quizzes only; instructors see drafts too
// @Tags courses
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [get]
func (c *CourseController) CourseDetail(ctx *gin.Context) {
	courseID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	course, quizzes, err := c.CourseService.CourseDetail(courseID, claims.UserID, claims.Role)
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"course": course, "quizzes": quizzes})
}

// CourseRoster godoc
// @Summary Enrolled students of a course
// @Tags courses
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]service.CourseRosterEntry}
// @Failure 403 {object} util.Response "Not the course owner"
// @Router /api/instructor/courses/{id}/students [get]
func (c *CourseController) CourseRoster(ctx *gin.Context) {
	courseID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	roster, err := c.CourseService.CourseRoster(courseID, claims.UserID, claims.Role)
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, roster)
}

// swagger:model QuizRequest
type QuizRequest struct {
	Title           string `json:"title" binding:"required"`
	DurationMinutes int    `json:"durationMinutes"`
	MaxAttempts     int    `json:"maxAttempts"`
	IsActive        *bool  `json:"isActive"`
}

// CreateQuiz godoc
// @Summary Create a quiz in a course
// @Tags quizzes
// @Accept  json
// @Produce  json
// @Param   id path int true "Course ID"
// @Param   body body QuizRequest true "Quiz fields"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 403 {object} util.Response "Not the course owner"
// @Router /api/instructor/courses/{id}/quizzes [post]
func (c *CourseController) CreateQuiz(ctx *gin.Context) {
	courseID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	quiz, err := c.CourseService.CreateQuiz(courseID, claims.UserID, claims.Role, service.QuizInput{
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		MaxAttempts:     req.MaxAttempts,
		IsActive:        req.IsActive,
	})
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// UpdateQuiz godoc
// @Summary Edit a quiz
// @Tags quizzes
// @Accept  json
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Param   body body QuizRequest true "Quiz fields"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 403 {object} util.Response "Not the course owner"
// @Failure 404 {object} util.Response "Quiz not found"
// @Router /api/instructor/quizzes/{id} [put]
func (c *CourseController) UpdateQuiz(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	quiz, err := c.CourseService.UpdateQuiz(quizID, claims.UserID, claims.Role, service.QuizInput{
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		MaxAttempts:     req.MaxAttempts,
		IsActive:        req.IsActive,
	})
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Tags quizzes
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "Not the course owner"
// @Router /api/instructor/quizzes/{id} [delete]
func (c *CourseController) DeleteQuiz(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.CourseService.DeleteQuiz(quizID, claims.UserID, claims.Role); err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	QuestionType  string `json:"questionType" binding:"required,oneof=MCQ FILL_BLANK THEORY"`
	QuestionText  string `json:"questionText" binding:"required"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectOption string `json:"correctOption"`
	Keywords      string `json:"keywords"`
}

func (r QuestionRequest) toInput() service.QuestionInput {
	return service.QuestionInput{
		QuestionType:  model.QuestionType(r.QuestionType),
		QuestionText:  r.QuestionText,
		OptionA:       r.OptionA,
		OptionB:       r.OptionB,
		OptionC:       r.OptionC,
		OptionD:       r.OptionD,
		CorrectOption: r.CorrectOption,
		Keywords:      r.Keywords,
	}
}

// CreateQuestion godoc
// @Summary Add a question to a quiz
// @Tags questions
// @Accept  json
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Param   body body QuestionRequest true "Question fields"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 403 {object} util.Response "Not the course owner"
// @Router /api/instructor/quizzes/{id}/questions [post]
func (c *CourseController) CreateQuestion(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	question, err := c.CourseService.CreateQuestion(quizID, claims.UserID, claims.Role, req.toInput())
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Edit a question
// @Description Past attempts keep their stored scores; only the review rebuild uses the new key
// @Tags questions
// @Accept  json
// @Produce  json
// @Param   id path int true "Question ID"
// @Param   body body QuestionRequest true "Question fields"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response "Question not found"
// @Router /api/instructor/questions/{id} [put]
func (c *CourseController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid question ID")
		return
	}
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	question, err := c.CourseService.UpdateQuestion(questionID, claims.UserID, claims.Role, req.toInput())
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce  json
// @Param   id path int true "Question ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Question not found"
// @Router /api/instructor/questions/{id} [delete]
func (c *CourseController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid question ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.CourseService.DeleteQuestion(questionID, claims.UserID, claims.Role); err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// QuizQuestions godoc
// @Summary List a quiz's questions with answer keys
// @Tags questions
// @Produce  json
// @Param   id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response "Not the course owner"
// @Router /api/instructor/quizzes/{id}/questions [get]
func (c *CourseController) QuizQuestions(ctx *gin.Context) {
	quizID, ok := uintParam(ctx, "id")
	if !ok {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	quiz, questions, err := c.CourseService.QuizQuestions(quizID, claims.UserID, claims.Role)
	if err != nil {
		mapCourseError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"quiz": quiz, "questions": questions})
}

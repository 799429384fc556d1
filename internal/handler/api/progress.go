package api

import (
	"net/http"

	reqdto "course-marketplace/internal/handler/dto/request"
	resdto "course-marketplace/internal/handler/dto/response"
	"course-marketplace/internal/handler/middleware"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	cmds commands.ProgressCommands
	q    queries.ProgressQueries
}

func NewProgressHandler(cmds commands.ProgressCommands, q queries.ProgressQueries) *ProgressHandler {
	return &ProgressHandler{cmds: cmds, q: q}
}

// @Summary Get course progress
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} queries.ProgressView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courses/{id}/progress [get]
func (h *ProgressHandler) Get(c *gin.Context) {
	userID, courseID, ok := h.params(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), userID, courseID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Complete lesson
// @Description Mark a lesson completed. Completing the last lesson of an all_lessons course issues the certificate.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.RecordLessonRequest true "Lesson"
// @Success 200 {object} resdto.ProgressRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courses/{id}/progress/lessons [post]
func (h *ProgressHandler) RecordLesson(c *gin.Context) {
	userID, courseID, ok := h.params(c)
	if !ok {
		return
	}
	var req reqdto.RecordLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.RecordLesson(c.Request.Context(), userID, courseID, req.LessonID.String())
	h.respond(c, result, err)
}

// @Summary Submit final exam
// @Description Store the final exam score. A score of 70 or more issues the certificate.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.RecordFinalExamRequest true "Score"
// @Success 200 {object} resdto.ProgressRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courses/{id}/progress/final-exam [post]
func (h *ProgressHandler) RecordFinalExam(c *gin.Context) {
	userID, courseID, ok := h.params(c)
	if !ok {
		return
	}
	var req reqdto.RecordFinalExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.RecordFinalExam(c.Request.Context(), userID, courseID, *req.Score)
	h.respond(c, result, err)
}

// @Summary Submit quiz
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.RecordQuizRequest true "Quiz score"
// @Success 200 {object} resdto.ProgressRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courses/{id}/progress/quizzes [post]
func (h *ProgressHandler) RecordQuiz(c *gin.Context) {
	userID, courseID, ok := h.params(c)
	if !ok {
		return
	}
	var req reqdto.RecordQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.RecordQuiz(c.Request.Context(), userID, courseID, req.QuizKey, *req.Score)
	h.respond(c, result, err)
}

func (h *ProgressHandler) params(c *gin.Context) (userID, courseID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		abortUnauthorized(c)
		return uuid.Nil, uuid.Nil, false
	}
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid course ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, courseID, true
}

func (h *ProgressHandler) respond(c *gin.Context, result *commands.ProgressResult, err error) {
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromProgressResult(result)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"SiteExer/internal/pkg"
	"SiteExer/internal/service"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	svc *service.AnswerService
}

type AnswerForm struct {
	Content string `json:"content"`
}

func NewAnswerHandler() *AnswerHandler {
	return &AnswerHandler{
		svc: service.NewAnswerService(),
	}
}

// Create posts an answer under a question; the redirect carries an anchor
// so the page can scroll to the new answer.
func (h *AnswerHandler) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return
	}

	var form AnswerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	a, err := h.svc.Create(c.Request.Context(), userID, questionID, form.Content)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"id": a.ID, "redirect": pkg.AnswerAnchorPath(a.QuestionID, a.ID)})
	case errors.Is(err, pkg.ErrNotFound):
		writeNotFound(c)
	case errors.Is(err, pkg.ErrValidation):
		writeValidationError(c, err)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
	}
}

func (h *AnswerHandler) Modify(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return
	}

	var form AnswerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	a, err := h.svc.Modify(c.Request.Context(), userID, answerID, form.Content)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"id": a.ID, "redirect": pkg.AnswerAnchorPath(a.QuestionID, a.ID)})
	case errors.Is(err, pkg.ErrNotFound):
		writeNotFound(c)
	case errors.Is(err, pkg.ErrForbidden):
		writeWarning(c, "no permission to modify", pkg.QuestionDetailPath(a.QuestionID))
	case errors.Is(err, pkg.ErrValidation):
		writeValidationError(c, err)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "modify failed"})
	}
}

// Delete by the author removes the answer; by anyone else it degrades to a
// warned no-op. Both paths land back on the parent question.
func (h *AnswerHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return
	}

	a, err := h.svc.Delete(c.Request.Context(), userID, answerID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"redirect": pkg.QuestionDetailPath(a.QuestionID)})
	case errors.Is(err, pkg.ErrNotFound):
		writeNotFound(c)
	case errors.Is(err, pkg.ErrForbidden):
		writeWarning(c, "no permission to delete", pkg.QuestionDetailPath(a.QuestionID))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"SiteExer/internal/pkg"
	"SiteExer/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	svc *service.QuestionService
}

type QuestionForm struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{
		svc: service.NewQuestionService(),
	}
}

// List serves the board index: optional keyword filter plus a 1-indexed
// page number.
func (h *QuestionHandler) List(c *gin.Context) {
	kw := c.Query("kw")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.svc.List(c.Request.Context(), kw, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *QuestionHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return
	}

	detail, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			writeNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "detail failed"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *QuestionHandler) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}

	var form QuestionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	q, err := h.svc.Create(c.Request.Context(), userID, form.Subject, form.Content)
	if err != nil {
		if errors.Is(err, pkg.ErrValidation) {
			writeValidationError(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": q.ID, "redirect": pkg.QuestionListPath()})
}

func (h *QuestionHandler) Modify(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return
	}

	var form QuestionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	q, err := h.svc.Modify(c.Request.Context(), userID, id, form.Subject, form.Content)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"id": q.ID, "redirect": pkg.QuestionDetailPath(q.ID)})
	case errors.Is(err, pkg.ErrNotFound):
		writeNotFound(c)
	case errors.Is(err, pkg.ErrForbidden):
		writeWarning(c, "no permission to modify", pkg.QuestionDetailPath(id))
	case errors.Is(err, pkg.ErrValidation):
		writeValidationError(c, err)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "modify failed"})
	}
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return
	}

	err = h.svc.Delete(c.Request.Context(), userID, id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"redirect": pkg.QuestionListPath()})
	case errors.Is(err, pkg.ErrNotFound):
		writeNotFound(c)
	case errors.Is(err, pkg.ErrForbidden):
		writeWarning(c, "no permission to delete", pkg.QuestionDetailPath(id))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
	}
}

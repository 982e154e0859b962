package handler

import (
	"errors"
	"net/http"
	"strconv"

	"SiteExer/internal/pkg"
	"SiteExer/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	svc *service.VoteService
}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{
		svc: service.NewVoteService(),
	}
}

func (h *VoteHandler) VoteQuestion(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return
	}

	err = h.svc.VoteQuestion(c.Request.Context(), userID, questionID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"redirect": pkg.QuestionDetailPath(questionID)})
	case errors.Is(err, pkg.ErrNotFound):
		writeNotFound(c)
	case errors.Is(err, pkg.ErrSelfVote):
		writeWarning(c, "cannot recommend your own post", pkg.QuestionDetailPath(questionID))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "vote failed"})
	}
}

func (h *VoteHandler) VoteAnswer(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return
	}

	a, err := h.svc.VoteAnswer(c.Request.Context(), userID, answerID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"redirect": pkg.AnswerAnchorPath(a.QuestionID, a.ID)})
	case errors.Is(err, pkg.ErrNotFound):
		writeNotFound(c)
	case errors.Is(err, pkg.ErrSelfVote):
		writeWarning(c, "cannot recommend your own post", pkg.AnswerAnchorPath(a.QuestionID, a.ID))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "vote failed"})
	}
}

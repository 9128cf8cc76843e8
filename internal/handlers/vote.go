package handlers

import (
	"log"
	"net/http"

	"quibble/internal/middleware"
	"quibble/internal/services"
	"quibble/internal/votes"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	VoteType string `json:"voteType"` // "upvote" or "downvote"
}

func parseVote(c *gin.Context) (votes.Direction, bool) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Message(c, http.StatusBadRequest, "invalid request body")
		return 0, false
	}
	dir, ok := votes.ParseDirection(req.VoteType)
	if !ok {
		Message(c, http.StatusBadRequest, "voteType must be upvote or downvote")
		return 0, false
	}
	return dir, true
}

// VotePost toggles the caller's vote on a post. Voting the same direction
// twice removes the vote, the opposite direction switches it.
func (h *VoteHandler) VotePost(c *gin.Context) {
	userID := middleware.CallerID(c)
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return
	}

	dir, ok := parseVote(c)
	if !ok {
		return
	}

	counts, err := services.TogglePostVote(userID, postID, dir)
	if err == services.ErrNotFound {
		Message(c, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("toggle post vote: %v", err)
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// VoteComment is the same toggle applied to a comment's ledger.
func (h *VoteHandler) VoteComment(c *gin.Context) {
	userID := middleware.CallerID(c)
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId", "Comment")
	if !ok {
		return
	}

	dir, ok := parseVote(c)
	if !ok {
		return
	}

	counts, err := services.ToggleCommentVote(userID, postID, commentID, dir)
	if err == services.ErrNotFound {
		Message(c, http.StatusNotFound, "Comment not found")
		return
	}
	if err != nil {
		log.Printf("toggle comment vote: %v", err)
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, counts)
}

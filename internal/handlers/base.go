package handlers

import (
	"net/http"
	"time"

	"quibble/internal/models"
	"quibble/internal/services"
	"quibble/internal/utils"

	"github.com/gin-gonic/gin"
)

// Message writes the uniform error envelope.
func Message(c *gin.Context, code int, text string) {
	c.JSON(code, gin.H{"message": text})
}

// ServerError hides the cause from the caller, handlers log it themselves.
func ServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Server error")
}

type userView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func viewUser(u *models.User) userView {
	return userView{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}

type postView struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	ContentHTML  string   `json:"contentHtml,omitempty"`
	Author       userView `json:"author"`
	CommentCount int      `json:"comment_count"`
	Upvotes      int64    `json:"upvotes"`
	Downvotes    int64    `json:"downvotes"`
	Score        int64    `json:"score"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type commentView struct {
	ID          uint     `json:"id"`
	PostID      uint     `json:"post_id"`
	Content     string   `json:"content"`
	ContentHTML string   `json:"contentHtml,omitempty"`
	Author      userView `json:"author"`
	Upvotes     int64    `json:"upvotes"`
	Downvotes   int64    `json:"downvotes"`
	Score       int64    `json:"score"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// viewPost derives the vote counts from the ledger at read time; the
// persisted score column is never echoed back.
func viewPost(post *models.Post, withHTML bool) (postView, error) {
	counts, err := services.PostCounts(post.ID)
	if err != nil {
		return postView{}, err
	}
	v := postView{
		ID:           post.ID,
		Title:        post.Title,
		Content:      post.Content,
		Author:       viewUser(&post.User),
		CommentCount: post.CommentCount,
		Upvotes:      counts.Upvotes,
		Downvotes:    counts.Downvotes,
		Score:        counts.Score,
		CreatedAt:    post.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    post.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if withHTML && post.Content != "" {
		v.ContentHTML = utils.RenderMarkdown(post.Content)
	}
	return v, nil
}

func viewComment(comment *models.Comment, withHTML bool) (commentView, error) {
	counts, err := services.CommentCounts(comment.ID)
	if err != nil {
		return commentView{}, err
	}
	v := commentView{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		Author:    viewUser(&comment.User),
		Upvotes:   counts.Upvotes,
		Downvotes: counts.Downvotes,
		Score:     counts.Score,
		CreatedAt: comment.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if withHTML {
		v.ContentHTML = utils.RenderMarkdown(comment.Content)
	}
	return v, nil
}

package handlers

import (
	"log"
	"net/http"
	"strings"

	"quibble/internal/db"
	"quibble/internal/middleware"
	"quibble/internal/models"
	"quibble/internal/policy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type commentRequest struct {
	Content string `json:"content"`
}

// loadPostComment resolves the :postId/:commentId pair, insisting the
// comment actually belongs to that post.
func loadPostComment(c *gin.Context) (*models.Post, *models.Comment, bool) {
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return nil, nil, false
	}

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		Message(c, http.StatusNotFound, "Post not found")
		return nil, nil, false
	}

	commentID, ok := parseID(c, "commentId", "Comment")
	if !ok {
		return nil, nil, false
	}

	var comment models.Comment
	if err := db.DB.Preload("User").Where("id = ? AND post_id = ?", commentID, post.ID).First(&comment).Error; err != nil {
		Message(c, http.StatusNotFound, "Comment not found")
		return nil, nil, false
	}

	return &post, &comment, true
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.CallerID(c)
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		Message(c, http.StatusNotFound, "Post not found")
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		Message(c, http.StatusBadRequest, "content is required")
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("create comment: %v", err)
		ServerError(c)
		return
	}

	if err := db.DB.Preload("User").First(&comment, comment.ID).Error; err != nil {
		log.Printf("reload comment %d: %v", comment.ID, err)
		ServerError(c)
		return
	}
	v, err := viewComment(&comment, false)
	if err != nil {
		log.Printf("derive counts for comment %d: %v", comment.ID, err)
		ServerError(c)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *CommentHandler) Update(c *gin.Context) {
	userID := middleware.CallerID(c)

	post, comment, ok := loadPostComment(c)
	if !ok {
		return
	}

	if err := policy.Authorize(policy.EditComment, post, comment, userID); err != nil {
		Message(c, http.StatusForbidden, "not your comment")
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		Message(c, http.StatusBadRequest, "content is required")
		return
	}

	if err := db.DB.Model(comment).Update("content", req.Content).Error; err != nil {
		log.Printf("update comment: %v", err)
		ServerError(c)
		return
	}

	v, err := viewComment(comment, false)
	if err != nil {
		log.Printf("derive counts for comment %d: %v", comment.ID, err)
		ServerError(c)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID := middleware.CallerID(c)

	post, comment, ok := loadPostComment(c)
	if !ok {
		return
	}

	// 评论作者或帖子作者都可以删除
	if err := policy.Authorize(policy.DeleteComment, post, comment, userID); err != nil {
		Message(c, http.StatusForbidden, "not allowed to delete this comment")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", comment.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(comment).Error
	})
	if err != nil {
		log.Printf("delete comment: %v", err)
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

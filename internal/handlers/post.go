package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"quibble/internal/db"
	"quibble/internal/middleware"
	"quibble/internal/models"
	"quibble/internal/policy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// fillCommentCounts 批量填充帖子的评论数量
func fillCommentCounts(posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	if err := db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results).Error; err != nil {
		return err
	}

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
	return nil
}

func parseID(c *gin.Context, name, what string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		Message(c, http.StatusNotFound, what+" not found")
		return 0, false
	}
	return uint(id), true
}

func (h *PostHandler) List(c *gin.Context) {
	var posts []models.Post
	if err := db.DB.Preload("User").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		log.Printf("list posts: %v", err)
		ServerError(c)
		return
	}

	if err := fillCommentCounts(posts); err != nil {
		log.Printf("count comments: %v", err)
		ServerError(c)
		return
	}

	views := make([]postView, 0, len(posts))
	for i := range posts {
		v, err := viewPost(&posts[i], false)
		if err != nil {
			log.Printf("derive counts for post %d: %v", posts[i].ID, err)
			ServerError(c)
			return
		}
		views = append(views, v)
	}

	c.JSON(http.StatusOK, views)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "Post")
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.Preload("User").First(&post, id).Error; err != nil {
		Message(c, http.StatusNotFound, "Post not found")
		return
	}

	var comments []models.Comment
	if err := db.DB.Preload("User").Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments).Error; err != nil {
		log.Printf("load comments for post %d: %v", post.ID, err)
		ServerError(c)
		return
	}
	post.CommentCount = len(comments)

	v, err := viewPost(&post, true)
	if err != nil {
		log.Printf("derive counts for post %d: %v", post.ID, err)
		ServerError(c)
		return
	}

	commentViews := make([]commentView, 0, len(comments))
	for i := range comments {
		cv, err := viewComment(&comments[i], true)
		if err != nil {
			log.Printf("derive counts for comment %d: %v", comments[i].ID, err)
			ServerError(c)
			return
		}
		commentViews = append(commentViews, cv)
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     v,
		"comments": commentViews,
	})
}

func (h *PostHandler) MyPosts(c *gin.Context) {
	userID := middleware.CallerID(c)

	var posts []models.Post
	if err := db.DB.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		log.Printf("list my posts: %v", err)
		ServerError(c)
		return
	}

	if err := fillCommentCounts(posts); err != nil {
		log.Printf("count comments: %v", err)
		ServerError(c)
		return
	}

	views := make([]postView, 0, len(posts))
	for i := range posts {
		v, err := viewPost(&posts[i], false)
		if err != nil {
			log.Printf("derive counts for post %d: %v", posts[i].ID, err)
			ServerError(c)
			return
		}
		views = append(views, v)
	}

	c.JSON(http.StatusOK, views)
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.CallerID(c)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		Message(c, http.StatusBadRequest, "title is required")
		return
	}

	post := models.Post{
		UserID:  userID,
		Title:   title,
		Content: req.Content,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		log.Printf("create post: %v", err)
		ServerError(c)
		return
	}

	if err := db.DB.Preload("User").First(&post, post.ID).Error; err != nil {
		log.Printf("reload post %d: %v", post.ID, err)
		ServerError(c)
		return
	}
	v, err := viewPost(&post, false)
	if err != nil {
		log.Printf("derive counts for post %d: %v", post.ID, err)
		ServerError(c)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *PostHandler) Update(c *gin.Context) {
	userID := middleware.CallerID(c)
	id, ok := parseID(c, "id", "Post")
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		Message(c, http.StatusNotFound, "Post not found")
		return
	}

	if err := policy.Authorize(policy.EditPost, &post, nil, userID); err != nil {
		Message(c, http.StatusForbidden, "not your post")
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		Message(c, http.StatusBadRequest, "title is required")
		return
	}

	if err := db.DB.Model(&post).Updates(map[string]interface{}{
		"title":   title,
		"content": req.Content,
	}).Error; err != nil {
		log.Printf("update post: %v", err)
		ServerError(c)
		return
	}

	if err := db.DB.Preload("User").First(&post, post.ID).Error; err != nil {
		log.Printf("reload post %d: %v", post.ID, err)
		ServerError(c)
		return
	}
	v, err := viewPost(&post, false)
	if err != nil {
		log.Printf("derive counts for post %d: %v", post.ID, err)
		ServerError(c)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID := middleware.CallerID(c)
	id, ok := parseID(c, "id", "Post")
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		Message(c, http.StatusNotFound, "Post not found")
		return
	}

	if err := policy.Authorize(policy.DeletePost, &post, nil, userID); err != nil {
		Message(c, http.StatusForbidden, "not your post")
		return
	}

	// 删除帖子时连同评论和全部投票一起清理
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint
		if err := tx.Model(&models.Comment{}).Where("post_id = ?", post.ID).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		log.Printf("delete post: %v", err)
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

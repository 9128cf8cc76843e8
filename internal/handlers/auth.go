package handlers

import (
	"log"
	"net/http"

	"quibble/internal/db"
	"quibble/internal/middleware"
	"quibble/internal/models"
	"quibble/internal/token"
	"quibble/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		Message(c, http.StatusBadRequest, "missing username or password")
		return
	}

	var existing models.User
	if err := db.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		// 与原有接口保持一致：重名返回 400 而非 409
		Message(c, http.StatusBadRequest, "username taken")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("hash password: %v", err)
		ServerError(c)
		return
	}

	user := models.User{
		Username: req.Username,
		Password: hash,
		Avatar:   utils.GetRandomAvatar(),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("create user: %v", err)
		ServerError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "successfully signed up user"})
}

func (h *AuthHandler) LogIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		Message(c, http.StatusBadRequest, "missing username or password")
		return
	}

	var user models.User
	err := db.DB.Where("username = ?", req.Username).First(&user).Error
	// Same message whether the username exists or not
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		Message(c, http.StatusBadRequest, "wrong username or password")
		return
	}

	access, err := token.IssueAccess(user.ID)
	if err != nil {
		log.Printf("issue access token: %v", err)
		ServerError(c)
		return
	}
	refresh, err := token.IssueRefresh(user.ID)
	if err != nil {
		log.Printf("issue refresh token: %v", err)
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        access,
		"refreshToken": refresh,
		"user":         viewUser(&user),
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		Message(c, http.StatusBadRequest, "missing refresh token")
		return
	}

	userID, err := token.VerifyRefresh(req.RefreshToken)
	if err != nil {
		Message(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	access, err := token.IssueAccess(userID)
	if err != nil {
		log.Printf("issue access token: %v", err)
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": access})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.CallerID(c)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		Message(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, viewUser(&user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.CallerID(c)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		Message(c, http.StatusNotFound, "User not found")
		return
	}

	var req struct {
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updates := make(map[string]interface{})

	if req.Username != "" && req.Username != user.Username {
		var existing models.User
		if err := db.DB.Where("username = ? AND id != ?", req.Username, user.ID).First(&existing).Error; err == nil {
			Message(c, http.StatusBadRequest, "username taken")
			return
		}
		updates["username"] = req.Username
	}

	if req.Avatar != "" {
		if !utils.IsValidAvatar(req.Avatar) {
			Message(c, http.StatusBadRequest, "invalid avatar")
			return
		}
		updates["avatar"] = req.Avatar
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("update profile: %v", err)
			ServerError(c)
			return
		}
	}

	c.JSON(http.StatusOK, viewUser(&user))
}

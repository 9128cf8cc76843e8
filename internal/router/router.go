package router

import (
	"quibble/internal/handlers"
	"quibble/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	voteHandler := handlers.NewVoteHandler()

	// 公共路由 (Public Routes)
	r.POST("/auth/sign-up", authHandler.SignUp)
	r.POST("/auth/log-in", authHandler.LogIn)
	r.POST("/auth/refresh-token", authHandler.RefreshToken) // refresh credential travels in the body

	r.GET("/posts", postHandler.List)    // 全部帖子，最新在前
	r.GET("/posts/:id", postHandler.Get) // 帖子详情 + 评论

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/auth/me", authHandler.Me)
		authorized.PUT("/auth/profile", authHandler.UpdateProfile)

		authorized.GET("/my-posts", postHandler.MyPosts)
		authorized.POST("/posts", postHandler.Create)
		authorized.PUT("/posts/:id", postHandler.Update)    // 仅作者
		authorized.DELETE("/posts/:id", postHandler.Delete) // 仅作者
		authorized.POST("/posts/:id/comments", commentHandler.Create)

		authorized.PUT("/posts/:id/comments/:commentId", commentHandler.Update)    // 仅评论作者
		authorized.DELETE("/posts/:id/comments/:commentId", commentHandler.Delete) // 评论作者或帖子作者

		authorized.POST("/posts/:id/vote", voteHandler.VotePost)
		authorized.POST("/posts/:id/comments/:commentId/vote", voteHandler.VoteComment)
	}
}

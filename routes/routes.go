package routes

import (
	"net/http"

	"blogapi/controllers"
	"blogapi/middleware"
	"blogapi/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authController *controllers.AuthController, postController *controllers.PostController, tokenService *services.TokenService) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/logout", middleware.AuthRequired(tokenService), authController.Logout)

	posts := r.Group("/v1/posts")
	posts.Use(middleware.AuthRequired(tokenService))
	{
		posts.GET("", postController.Index)
		posts.POST("/store", postController.Store)
		posts.GET("/show/:id", postController.Show)
		posts.PUT("/update/:id", postController.Update)
		posts.DELETE("/destroy/:id", postController.Destroy)
	}
}

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/teamdock-dev/teamdock/internal/handlers"
	"github.com/teamdock-dev/teamdock/internal/middleware"
	"github.com/teamdock-dev/teamdock/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		// Public read-only project catalog
		api.GET("/projects", handlers.ListPublicProjects)
		api.GET("/projects/:id", handlers.GetPublicProject)

		admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminRequired())
		{
			admin.GET("/users", handlers.ListUsers)
			admin.POST("/users", handlers.CreateUser)
			admin.PUT("/users/:id", handlers.UpdateUser)
			admin.DELETE("/users/:id", handlers.DeleteUser)

			admin.GET("/projects", handlers.ListProjects)
			admin.POST("/projects", handlers.CreateProject)
			admin.PUT("/projects/:id", handlers.UpdateProject)
			admin.DELETE("/projects/:id", handlers.DeleteProject)

			admin.GET("/assignments", handlers.ListAssignments)
			admin.POST("/assignments", handlers.CreateAssignment)
			admin.PUT("/assignments/:id", handlers.UpdateAssignment)
			admin.DELETE("/assignments/:id", handlers.DeleteAssignment)
		}
	}

	return r
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamdock-dev/teamdock/db"
	"github.com/teamdock-dev/teamdock/internal/models"
	"github.com/teamdock-dev/teamdock/internal/utils"
	"gorm.io/gorm"
)

// PublicProjectResponse is the unauthenticated catalog shape. Technologies
// is materialized into a list here; the admin surface keeps the raw string.
type PublicProjectResponse struct {
	ID               uint     `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Status           string   `json:"status"`
	Technologies     []string `json:"technologies"`
	RequiredTeamSize int      `json:"required_team_size"`
}

func toPublicProjectResponse(project models.Project) PublicProjectResponse {
	return PublicProjectResponse{
		ID:               project.ID,
		Title:            project.Title,
		Description:      project.Description,
		Status:           project.Status,
		Technologies:     models.ParseTechnologies(project.Technologies),
		RequiredTeamSize: project.RequiredTeamSize,
	}
}

func ListPublicProjects(ctx *gin.Context) {
	var projects []models.Project

	if err := db.DB.Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]PublicProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, toPublicProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetPublicProject(ctx *gin.Context) {
	projectID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toPublicProjectResponse(project))
}

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

type CreateProjectRequest struct {
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	Technologies     string `json:"technologies"`
	RequiredTeamSize int    `json:"required_team_size" binding:"required,gt=0"`
}

type UpdateProjectRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Status           *string `json:"status"`
	Technologies     *string `json:"technologies"`
	RequiredTeamSize *int    `json:"required_team_size" binding:"omitempty,gt=0"`
}

type ProjectResponse struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	Technologies     string `json:"technologies"`
	RequiredTeamSize int    `json:"required_team_size"`
	CreatedBy        uint   `json:"created_by"`
}

func toProjectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:               project.ID,
		Title:            project.Title,
		Description:      project.Description,
		Status:           project.Status,
		Technologies:     project.Technologies,
		RequiredTeamSize: project.RequiredTeamSize,
		CreatedBy:        project.CreatedBy,
	}
}

func ListProjects(ctx *gin.Context) {
	var projects []models.Project

	if err := db.DB.Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, toProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// CreatedBy always comes from the authenticated admin, never the payload.
	project := models.Project{
		Title:            body.Title,
		Description:      body.Description,
		Status:           body.Status,
		Technologies:     body.Technologies,
		RequiredTeamSize: body.RequiredTeamSize,
		CreatedBy:        userID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, toProjectResponse(project))
}

func UpdateProject(ctx *gin.Context) {
	projectID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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

	updates := make(map[string]interface{})

	if body.Title != nil {
		updates["title"] = *body.Title
	}

	if body.Description != nil {
		updates["description"] = *body.Description
	}

	if body.Status != nil {
		updates["status"] = *body.Status
	}

	if body.Technologies != nil {
		updates["technologies"] = *body.Technologies
	}

	if body.RequiredTeamSize != nil {
		updates["required_team_size"] = *body.RequiredTeamSize
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&project).Updates(updates).Error; err != nil {
			log.Printf("Failed to update project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	if err := db.DB.First(&project, project.ID).Error; err != nil {
		log.Printf("Failed to refresh project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(project))
}

func DeleteProject(ctx *gin.Context) {
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

	if err := db.DB.Delete(&project).Error; err != nil {
		log.Printf("Failed to delete project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

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

type CreateAssignmentRequest struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

type UpdateAssignmentRequest struct {
	ProjectID *uint   `json:"project_id"`
	UserID    *uint   `json:"user_id"`
	Role      *string `json:"role"`
}

type AssignmentResponse struct {
	ID        uint   `json:"id"`
	ProjectID uint   `json:"project_id"`
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
}

func toAssignmentResponse(assignment models.ProjectAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        assignment.ID,
		ProjectID: assignment.ProjectID,
		UserID:    assignment.UserID,
		Role:      assignment.Role,
	}
}

// projectExists and userExists back the explicit referential checks: an
// assignment must never point at a missing row.
func projectExists(id uint) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func userExists(id uint) (bool, error) {
	var count int64
	err := db.DB.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func ListAssignments(ctx *gin.Context) {
	var assignments []models.ProjectAssignment

	if err := db.DB.Find(&assignments).Error; err != nil {
		log.Printf("Failed to list assignments: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assignments"})
		return
	}

	response := make([]AssignmentResponse, 0, len(assignments))

	for _, assignment := range assignments {
		response = append(response, toAssignmentResponse(assignment))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateAssignment(ctx *gin.Context) {
	var body CreateAssignmentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	exists, err := projectExists(body.ProjectID)

	if err != nil {
		log.Printf("Failed to check project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project does not exist"})
		return
	}

	exists, err = userExists(body.UserID)

	if err != nil {
		log.Printf("Failed to check user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User does not exist"})
		return
	}

	assignment := models.ProjectAssignment{
		ProjectID: body.ProjectID,
		UserID:    body.UserID,
		Role:      body.Role,
	}

	if err := db.DB.Create(&assignment).Error; err != nil {
		log.Printf("Failed to create assignment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		return
	}

	ctx.JSON(http.StatusCreated, toAssignmentResponse(assignment))
}

func UpdateAssignment(ctx *gin.Context) {
	assignmentID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var body UpdateAssignmentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var assignment models.ProjectAssignment

	if err := db.DB.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		} else {
			log.Printf("Failed to fetch assignment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	updates := make(map[string]interface{})

	if body.ProjectID != nil {
		exists, err := projectExists(*body.ProjectID)

		if err != nil {
			log.Printf("Failed to check project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !exists {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project does not exist"})
			return
		}

		updates["project_id"] = *body.ProjectID
	}

	if body.UserID != nil {
		exists, err := userExists(*body.UserID)

		if err != nil {
			log.Printf("Failed to check user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !exists {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User does not exist"})
			return
		}

		updates["user_id"] = *body.UserID
	}

	if body.Role != nil {
		updates["role"] = *body.Role
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&assignment).Updates(updates).Error; err != nil {
			log.Printf("Failed to update assignment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	if err := db.DB.First(&assignment, assignment.ID).Error; err != nil {
		log.Printf("Failed to refresh assignment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toAssignmentResponse(assignment))
}

func DeleteAssignment(ctx *gin.Context) {
	assignmentID, err := utils.GetIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var assignment models.ProjectAssignment

	if err := db.DB.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		} else {
			log.Printf("Failed to fetch assignment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := db.DB.Delete(&assignment).Error; err != nil {
		log.Printf("Failed to delete assignment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}

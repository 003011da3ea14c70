package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/teamdock-dev/teamdock/db"
	"github.com/teamdock-dev/teamdock/internal/models"
)

func TestCreateProjectStampsCreator(t *testing.T) {
	r := setupTest(t)

	admin := createTestUser(t, "admin@example.com", "admin")
	token := tokenFor(t, admin)

	// The payload tries to attribute the project to someone else.
	w := doRequest(r, http.MethodPost, "/api/admin/projects", token,
		`{"title":"Search service","description":"Full-text search","status":"open","technologies":"Go,Postgres","required_team_size":3,"created_by":999}`)
	assertStatus(t, w, http.StatusCreated)

	var created struct {
		CreatedBy uint `json:"created_by"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if created.CreatedBy != admin.ID {
		t.Errorf("created_by = %d, want the authenticated admin %d", created.CreatedBy, admin.ID)
	}
}

func TestTechnologiesRoundTrip(t *testing.T) {
	r := setupTest(t)

	admin := createTestUser(t, "admin@example.com", "admin")
	token := tokenFor(t, admin)

	w := doRequest(r, http.MethodPost, "/api/admin/projects", token,
		`{"title":"CLI rewrite","required_team_size":2,"technologies":"Go,Rust"}`)
	assertStatus(t, w, http.StatusCreated)

	w = doRequest(r, http.MethodGet, "/api/admin/projects", token, "")
	assertStatus(t, w, http.StatusOK)

	var projects []struct {
		Technologies string `json:"technologies"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}

	if projects[0].Technologies != "Go,Rust" {
		t.Errorf("technologies = %q, want verbatim \"Go,Rust\"", projects[0].Technologies)
	}
}

func TestUpdateProjectPartial(t *testing.T) {
	r := setupTest(t)

	admin := createTestUser(t, "admin@example.com", "admin")
	token := tokenFor(t, admin)

	project := models.Project{
		Title:            "Data pipeline",
		Description:      "Ingest events",
		Status:           "open",
		Technologies:     "Go,Kafka",
		RequiredTeamSize: 4,
		CreatedBy:        admin.ID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/admin/projects/%d", project.ID), token,
		`{"status":"in_progress"}`)
	assertStatus(t, w, http.StatusOK)

	var updated models.Project

	if err := db.DB.First(&updated, project.ID).Error; err != nil {
		t.Fatalf("fetch project: %v", err)
	}

	if updated.Status != "in_progress" {
		t.Errorf("status = %q, want \"in_progress\"", updated.Status)
	}

	if updated.Title != "Data pipeline" || updated.Technologies != "Go,Kafka" || updated.RequiredTeamSize != 4 {
		t.Error("fields absent from the payload must stay untouched")
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	r := setupTest(t)

	admin := createTestUser(t, "admin@example.com", "admin")
	token := tokenFor(t, admin)

	w := doRequest(r, http.MethodDelete, "/api/admin/projects/99999", token, "")
	assertStatus(t, w, http.StatusNotFound)
}

func TestDeleteProjectCascadesAssignments(t *testing.T) {
	r := setupTest(t)

	admin := createTestUser(t, "admin@example.com", "admin")
	token := tokenFor(t, admin)

	member := createTestUser(t, "member@example.com", "user")

	project := models.Project{Title: "Doomed", RequiredTeamSize: 1, CreatedBy: admin.ID}
	if err := db.DB.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	assignment := models.ProjectAssignment{ProjectID: project.ID, UserID: member.ID, Role: "developer"}
	if err := db.DB.Create(&assignment).Error; err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/api/admin/projects/%d", project.ID), token, "")
	assertStatus(t, w, http.StatusOK)

	if got := countRows(t, &models.ProjectAssignment{}); got != 0 {
		t.Errorf("assignment count = %d, want 0 (delete must cascade)", got)
	}
}

package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/teamdock-dev/teamdock/db"
	"github.com/teamdock-dev/teamdock/internal/models"
)

func TestPublicCatalogNeedsNoToken(t *testing.T) {
	r := setupTest(t)

	admin := createTestUser(t, "admin@example.com", "admin")

	project := models.Project{
		Title:            "Chat service",
		Status:           "open",
		Technologies:     "Go, Rust ,Postgres",
		RequiredTeamSize: 3,
		CreatedBy:        admin.ID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	w := doRequest(r, http.MethodGet, "/api/projects", "", "")
	assertStatus(t, w, http.StatusOK)

	var listed []struct {
		Title        string   `json:"title"`
		Technologies []string `json:"technologies"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(listed) != 1 {
		t.Fatalf("got %d projects, want 1", len(listed))
	}

	want := []string{"Go", "Rust", "Postgres"}

	if !reflect.DeepEqual(listed[0].Technologies, want) {
		t.Errorf("technologies = %v, want parsed list %v", listed[0].Technologies, want)
	}

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), "", "")
	assertStatus(t, w, http.StatusOK)
}

func TestPublicProjectNotFound(t *testing.T) {
	r := setupTest(t)

	w := doRequest(r, http.MethodGet, "/api/projects/99999", "", "")
	assertStatus(t, w, http.StatusNotFound)
}

// makeadmin promotes an existing user to the admin role through the admin
// API. It is a plain HTTP client: list users, find the target by email,
// PUT the role change.
//
// Usage: makeadmin -email user@example.com
// Requires ADMIN_TOKEN (a bearer token for an admin account) and
// optionally API_URL (default http://localhost:8000).
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

type user struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func main() {
	godotenv.Load()

	email := flag.String("email", "", "email of the user to promote")
	flag.Parse()

	if *email == "" {
		log.Fatal("Usage: makeadmin -email user@example.com")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}

	token := os.Getenv("ADMIN_TOKEN")
	if token == "" {
		log.Fatal("ADMIN_TOKEN environment variable is not set")
	}

	target, err := findUser(apiURL, token, *email)
	if err != nil {
		log.Fatalf("Failed to find user: %v", err)
	}

	if target.Role == "admin" {
		fmt.Printf("%s is already an admin\n", target.Email)
		return
	}

	if err := promote(apiURL, token, target.ID); err != nil {
		log.Fatalf("Failed to promote user: %v", err)
	}

	fmt.Printf("%s is now an admin\n", target.Email)
}

func findUser(apiURL, token, email string) (user, error) {
	req, err := http.NewRequest(http.MethodGet, apiURL+"/api/admin/users", nil)
	if err != nil {
		return user{}, err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return user{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return user{}, fmt.Errorf("listing users failed: %s: %s", resp.Status, body)
	}

	var users []user

	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return user{}, err
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}

	return user{}, fmt.Errorf("no user with email %s", email)
}

func promote(apiURL, token string, id uint) error {
	payload, err := json.Marshal(map[string]string{"role": "admin"})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/admin/users/%d", apiURL, id)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("update failed: %s: %s", resp.Status, body)
	}

	return nil
}

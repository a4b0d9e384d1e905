package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Project is a container for issues.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Key         string    `json:"key"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectCreate is the payload for creating a project.
type ProjectCreate struct {
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description,omitempty"`
}

// Member is a user's membership in a project.
type Member struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// ProjectsService groups the project endpoints.
type ProjectsService struct {
	client *Client
}

// List returns all projects the current user is a member of.
func (s *ProjectsService) List(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := s.client.do(ctx, http.MethodGet, "/api/projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Create creates a new project owned by the current user.
func (s *ProjectsService) Create(ctx context.Context, in ProjectCreate) (Project, error) {
	var project Project
	if err := s.client.do(ctx, http.MethodPost, "/api/projects", nil, in, &project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// AddMember adds an existing user to the project by email.
func (s *ProjectsService) AddMember(ctx context.Context, projectID int64, email, role string) (Member, error) {
	path := fmt.Sprintf("/api/projects/%d/members", projectID)
	var member Member
	err := s.client.do(ctx, http.MethodPost, path, nil, map[string]string{
		"email": email,
		"role":  role,
	}, &member)
	if err != nil {
		return Member{}, err
	}
	return member, nil
}

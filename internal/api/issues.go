package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Issue statuses and priorities as the service defines them.
const (
	IssueStatusTodo       = "todo"
	IssueStatusInProgress = "in_progress"
	IssueStatusDone       = "done"

	IssuePriorityLow    = "low"
	IssuePriorityMedium = "medium"
	IssuePriorityHigh   = "high"
)

// Issue is a tracked work item within a project.
type Issue struct {
	ID           int64     `json:"id"`
	ProjectID    int64     `json:"project_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	ReporterID   int64     `json:"reporter_id"`
	AssigneeID   *int64    `json:"assignee_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ReporterName string    `json:"reporter_name"`
	AssigneeName *string   `json:"assignee_name,omitempty"`
}

// IssueCreate is the payload for creating an issue.
type IssueCreate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	AssigneeID  *int64 `json:"assignee_id,omitempty"`
}

// IssueUpdate is a partial update; nil fields are left unchanged.
type IssueUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	AssigneeID  *int64  `json:"assignee_id,omitempty"`
}

// IssueFilter narrows an issue listing. Zero values are omitted.
type IssueFilter struct {
	Search   string // matches title or description
	Status   string
	Priority string
	Assignee int64
	Sort     string // created_at (default), updated_at, priority, status
}

func (f IssueFilter) query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("q", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if f.Assignee != 0 {
		q.Set("assignee", strconv.FormatInt(f.Assignee, 10))
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	return q
}

// IssuesService groups the issue endpoints.
type IssuesService struct {
	client *Client
}

// List returns the project's issues matching the filter.
func (s *IssuesService) List(ctx context.Context, projectID int64, filter IssueFilter) ([]Issue, error) {
	path := fmt.Sprintf("/api/projects/%d/issues", projectID)
	var issues []Issue
	if err := s.client.do(ctx, http.MethodGet, path, filter.query(), nil, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// Create files a new issue in the project.
func (s *IssuesService) Create(ctx context.Context, projectID int64, in IssueCreate) (Issue, error) {
	path := fmt.Sprintf("/api/projects/%d/issues", projectID)
	var issue Issue
	if err := s.client.do(ctx, http.MethodPost, path, nil, in, &issue); err != nil {
		return Issue{}, err
	}
	return issue, nil
}

// Get returns a single issue by ID.
func (s *IssuesService) Get(ctx context.Context, issueID int64) (Issue, error) {
	path := fmt.Sprintf("/api/issues/%d", issueID)
	var issue Issue
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &issue); err != nil {
		return Issue{}, err
	}
	return issue, nil
}

// Update applies a partial update to an issue.
func (s *IssuesService) Update(ctx context.Context, issueID int64, in IssueUpdate) (Issue, error) {
	path := fmt.Sprintf("/api/issues/%d", issueID)
	var issue Issue
	if err := s.client.do(ctx, http.MethodPatch, path, nil, in, &issue); err != nil {
		return Issue{}, err
	}
	return issue, nil
}

// Delete removes an issue.
func (s *IssuesService) Delete(ctx context.Context, issueID int64) error {
	path := fmt.Sprintf("/api/issues/%d", issueID)
	return s.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

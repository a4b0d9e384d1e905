package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Comment is a note on an issue.
type Comment struct {
	ID         int64     `json:"id"`
	IssueID    int64     `json:"issue_id"`
	AuthorID   int64     `json:"author_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
}

// CommentsService groups the comment endpoints.
type CommentsService struct {
	client *Client
}

// List returns an issue's comments in creation order.
func (s *CommentsService) List(ctx context.Context, issueID int64) ([]Comment, error) {
	path := fmt.Sprintf("/api/issues/%d/comments", issueID)
	var comments []Comment
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create adds a comment to an issue authored by the current user.
func (s *CommentsService) Create(ctx context.Context, issueID int64, body string) (Comment, error) {
	path := fmt.Sprintf("/api/issues/%d/comments", issueID)
	var comment Comment
	err := s.client.do(ctx, http.MethodPost, path, nil, map[string]string{"body": body}, &comment)
	if err != nil {
		return Comment{}, err
	}
	return comment, nil
}

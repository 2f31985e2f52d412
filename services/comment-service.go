package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"effica-project/backend/collab-service/apperrors"
	"effica-project/backend/collab-service/models"
	"effica-project/backend/collab-service/repositories"
)

type CommentService struct {
	Comments repositories.CommentStore
}

func NewCommentService(comments repositories.CommentStore) *CommentService {
	return &CommentService{Comments: comments}
}

// PostComment stores a comment owned by the caller with a server-assigned
// timestamp. Empty or whitespace-only text is rejected before anything is
// written.
func (s *CommentService) PostComment(ctx context.Context, userID primitive.ObjectID, userName, text string) (*models.Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.NewValidation("Comment text is required")
	}

	comment := &models.Comment{
		User:   userName,
		Text:   trimmed,
		Time:   time.Now().UTC().Format(time.RFC3339),
		UserID: userID,
	}
	if err := s.Comments.Insert(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to post comment: %w", err)
	}
	return comment, nil
}

// ListComments returns the caller's comments only.
func (s *CommentService) ListComments(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error) {
	return s.Comments.FindByOwner(ctx, userID)
}

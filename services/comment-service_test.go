package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"effica-project/backend/collab-service/apperrors"
)

func TestPostComment_RejectsEmptyText(t *testing.T) {
	t.Parallel()
	store := &fakeCommentStore{}
	service := NewCommentService(store)

	testCases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "spaces only", text: "   "},
		{name: "whitespace mix", text: " \t\n "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.PostComment(context.Background(), primitive.NewObjectID(), "A", tc.text)
			var validationErr *apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if len(store.comments) != 0 {
				t.Error("Rejected comment must not be stored")
			}
		})
	}
}

func TestPostComment_Success(t *testing.T) {
	t.Parallel()
	service := NewCommentService(&fakeCommentStore{})
	owner := primitive.NewObjectID()

	comment, err := service.PostComment(context.Background(), owner, "Alice", "  hello team  ")
	if err != nil {
		t.Fatalf("PostComment failed: %v", err)
	}

	if comment.Text != "hello team" {
		t.Errorf("Expected trimmed text, got %q", comment.Text)
	}
	if comment.User != "Alice" {
		t.Errorf("Expected author name from the caller identity, got %q", comment.User)
	}
	if comment.UserID != owner {
		t.Error("Comment must be owned by the caller")
	}
	if _, err := time.Parse(time.RFC3339, comment.Time); err != nil {
		t.Errorf("Expected an RFC3339 timestamp, got %q", comment.Time)
	}
}

func TestListComments_OwnerScoped(t *testing.T) {
	t.Parallel()
	service := NewCommentService(&fakeCommentStore{})
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	if _, err := service.PostComment(context.Background(), alice, "Alice", "mine"); err != nil {
		t.Fatalf("PostComment failed: %v", err)
	}
	if _, err := service.PostComment(context.Background(), bob, "Bob", "not yours"); err != nil {
		t.Fatalf("PostComment failed: %v", err)
	}

	comments, err := service.ListComments(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("Expected only the caller's comment, got %d", len(comments))
	}
	if comments[0].Text != "mine" {
		t.Errorf("Expected the caller's comment, got %q", comments[0].Text)
	}
}

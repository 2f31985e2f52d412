// Package repositories holds the MongoDB-backed stores. Each store hides its
// collection behind a small interface so the service layer never touches the
// driver directly, and every round-trip to Mongo goes through a shared
// circuit breaker.
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"effica-project/backend/collab-service/models"
)

type UserStore interface {
	// FindByEmail returns the user for a normalized email, or nil when no
	// such user exists.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

type ProjectStore interface {
	Insert(ctx context.Context, project *models.Project) error
	// FindByOwner lists every project owned by the given user.
	FindByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Project, error)
	// FindOwned loads a project only when both the id and the owner match;
	// returns nil when no such owned project exists.
	FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.Project, error)
	// Save rewrites the whole project document. Concurrent saves of the same
	// project race with last-writer-wins semantics.
	Save(ctx context.Context, project *models.Project) error
}

type CommentStore interface {
	Insert(ctx context.Context, comment *models.Comment) error
	FindByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error)
}

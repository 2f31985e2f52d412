package repositories

import (
	"context"
	"errors"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"effica-project/backend/collab-service/models"
)

type ProjectRepo struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewProjectRepo(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *ProjectRepo {
	return &ProjectRepo{collection: collection, breaker: breaker}
}

func (r *ProjectRepo) Insert(ctx context.Context, project *models.Project) error {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.collection.InsertOne(ctx, project)
	})
	if err != nil {
		return err
	}

	project.ID = result.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProjectRepo) FindByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Project, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		projects := []models.Project{}
		if err := cursor.All(ctx, &projects); err != nil {
			return nil, err
		}
		return projects, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Project), nil
}

// FindOwned filters by both the project id and the owner, so a guessed id
// belonging to another user behaves exactly like a missing project.
func (r *ProjectRepo) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.Project, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		var project models.Project
		err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&project)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &project, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.(*models.Project), nil
}

func (r *ProjectRepo) Save(ctx context.Context, project *models.Project) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		return r.collection.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	})
	return err
}

package repositories

import (
	"context"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"effica-project/backend/collab-service/models"
)

type CommentRepo struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewCommentRepo(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *CommentRepo {
	return &CommentRepo{collection: collection, breaker: breaker}
}

func (r *CommentRepo) Insert(ctx context.Context, comment *models.Comment) error {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.collection.InsertOne(ctx, comment)
	})
	if err != nil {
		return err
	}

	comment.ID = result.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CommentRepo) FindByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		comments := []models.Comment{}
		if err := cursor.All(ctx, &comments); err != nil {
			return nil, err
		}
		return comments, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Comment), nil
}

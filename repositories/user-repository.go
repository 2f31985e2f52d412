package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"effica-project/backend/collab-service/apperrors"
	"effica-project/backend/collab-service/models"
)

type UserRepo struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewUserRepo(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *UserRepo {
	return &UserRepo{collection: collection, breaker: breaker}
}

// EnsureIndexes creates the unique index on the normalized email field. The
// index backs the duplicate-registration check against concurrent registers.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	_, err := r.collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create unique index on email: %v", err)
	}
	return nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		var user models.User
		err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &user, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.(*models.User), nil
}

func (r *UserRepo) Insert(ctx context.Context, user *models.User) error {
	if violated := missingUserFields(user); len(violated) > 0 {
		return &apperrors.ValidationError{Message: "Invalid input data", Fields: violated}
	}

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.collection.InsertOne(ctx, user)
	})
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrEmailTaken
	}
	if err != nil {
		return err
	}

	user.ID = result.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)
	return nil
}

func missingUserFields(user *models.User) []string {
	var violated []string
	if user.Name == "" {
		violated = append(violated, "name")
	}
	if user.Email == "" {
		violated = append(violated, "email")
	}
	if user.Password == "" {
		violated = append(violated, "password")
	}
	return violated
}

package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"effica-project/backend/collab-service/apperrors"
	"effica-project/backend/collab-service/models"
)

// In-memory stores standing in for the Mongo-backed repositories.

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	for i := range f.users {
		if f.users[i].Email == user.Email {
			return apperrors.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return nil
}

type fakeProjectStore struct {
	projects []models.Project
}

func (f *fakeProjectStore) Insert(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	f.projects = append(f.projects, cloneProject(*project))
	return nil
}

func (f *fakeProjectStore) FindByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Project, error) {
	owned := []models.Project{}
	for i := range f.projects {
		if f.projects[i].UserID == userID {
			owned = append(owned, cloneProject(f.projects[i]))
		}
	}
	return owned, nil
}

func (f *fakeProjectStore) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id && f.projects[i].UserID == userID {
			project := cloneProject(f.projects[i])
			return &project, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) Save(ctx context.Context, project *models.Project) error {
	for i := range f.projects {
		if f.projects[i].ID == project.ID {
			f.projects[i] = cloneProject(*project)
			return nil
		}
	}
	f.projects = append(f.projects, cloneProject(*project))
	return nil
}

func cloneProject(p models.Project) models.Project {
	tasks := make([]models.Task, len(p.Tasks))
	copy(tasks, p.Tasks)
	p.Tasks = tasks
	return p
}

type fakeCommentStore struct {
	comments []models.Comment
}

func (f *fakeCommentStore) Insert(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentStore) FindByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error) {
	owned := []models.Comment{}
	for i := range f.comments {
		if f.comments[i].UserID == userID {
			owned = append(owned, f.comments[i])
		}
	}
	return owned, nil
}

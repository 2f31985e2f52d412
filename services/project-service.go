package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"effica-project/backend/collab-service/apperrors"
	"effica-project/backend/collab-service/models"
	"effica-project/backend/collab-service/repositories"
)

type ProjectService struct {
	Projects repositories.ProjectStore
}

func NewProjectService(projects repositories.ProjectStore) *ProjectService {
	return &ProjectService{Projects: projects}
}

// CreateProject persists a new project owned by the caller with an empty
// task sequence.
func (s *ProjectService) CreateProject(ctx context.Context, userID primitive.ObjectID, title, description string) (*models.Project, error) {
	project := &models.Project{
		Title:       title,
		Description: description,
		UserID:      userID,
		Tasks:       []models.Task{},
	}
	if err := s.Projects.Insert(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// ListProjects returns the caller's projects only.
func (s *ProjectService) ListProjects(ctx context.Context, userID primitive.ObjectID) ([]models.Project, error) {
	return s.Projects.FindByOwner(ctx, userID)
}

// AddTask appends a task to an owned project. The project is loaded by id
// and owner together, so a project belonging to another user is
// indistinguishable from a missing one.
func (s *ProjectService) AddTask(ctx context.Context, userID primitive.ObjectID, projectID, title, assignee, dueDate string) (*models.Project, error) {
	project, err := s.loadOwned(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	project.Tasks = append(project.Tasks, models.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Assignee:  assignee,
		DueDate:   dueDate,
		Completed: false,
	})

	if err := s.Projects.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return project, nil
}

// SetTaskCompletion overwrites the completed flag of an embedded task and
// rewrites the whole project document. Setting the same flag twice is a
// no-op the second time.
func (s *ProjectService) SetTaskCompletion(ctx context.Context, userID primitive.ObjectID, projectID, taskID string, completed bool) (*models.Project, error) {
	project, err := s.loadOwned(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range project.Tasks {
		if project.Tasks[i].ID == taskID {
			project.Tasks[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.ErrTaskNotFound
	}

	if err := s.Projects.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) loadOwned(ctx context.Context, userID primitive.ObjectID, projectID string) (*models.Project, error) {
	// A malformed id can never name an owned project.
	id, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	project, err := s.Projects.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	return project, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"effica-project/backend/collab-service/apperrors"
)

func TestCreateProject_StartsEmpty(t *testing.T) {
	t.Parallel()
	service := NewProjectService(&fakeProjectStore{})
	owner := primitive.NewObjectID()

	project, err := service.CreateProject(context.Background(), owner, "P", "D")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	if project.ID.IsZero() {
		t.Error("Expected a generated project id")
	}
	if project.UserID != owner {
		t.Error("Project must be owned by the caller")
	}
	if project.Tasks == nil || len(project.Tasks) != 0 {
		t.Errorf("Expected an empty (non-nil) task sequence, got %#v", project.Tasks)
	}
}

func TestListProjects_OwnerScoped(t *testing.T) {
	t.Parallel()
	service := NewProjectService(&fakeProjectStore{})
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	if _, err := service.CreateProject(context.Background(), alice, "P1", "D"); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if _, err := service.CreateProject(context.Background(), bob, "P2", "D"); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	projects, err := service.ListProjects(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected exactly the caller's project, got %d", len(projects))
	}
	if projects[0].Title != "P1" {
		t.Errorf("Expected P1, got %s", projects[0].Title)
	}
}

func TestAddTask_Appends(t *testing.T) {
	t.Parallel()
	service := NewProjectService(&fakeProjectStore{})
	owner := primitive.NewObjectID()

	project, err := service.CreateProject(context.Background(), owner, "P", "D")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	project, err = service.AddTask(context.Background(), owner, project.ID.Hex(), "T1", "@A", "June 1")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if len(project.Tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(project.Tasks))
	}
	if project.Tasks[0].Completed {
		t.Error("New tasks must start incomplete")
	}
	if project.Tasks[0].ID == "" {
		t.Error("Expected a generated task id")
	}

	project, err = service.AddTask(context.Background(), owner, project.ID.Hex(), "T2", "@B", "June 2")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if len(project.Tasks) != 2 {
		t.Fatalf("Adding a task must append, got %d tasks", len(project.Tasks))
	}
	if project.Tasks[0].Title != "T1" || project.Tasks[1].Title != "T2" {
		t.Error("Existing tasks must be preserved in order")
	}
	if project.Tasks[0].ID == project.Tasks[1].ID {
		t.Error("Task ids must be unique within the project")
	}
}

func TestAddTask_NotOwned(t *testing.T) {
	t.Parallel()
	service := NewProjectService(&fakeProjectStore{})
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	project, err := service.CreateProject(context.Background(), alice, "P", "D")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	// A guessed valid id owned by someone else looks exactly like a missing
	// project.
	_, err = service.AddTask(context.Background(), bob, project.ID.Hex(), "T", "@B", "June 1")
	if !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}
}

func TestAddTask_MalformedProjectID(t *testing.T) {
	t.Parallel()
	service := NewProjectService(&fakeProjectStore{})

	_, err := service.AddTask(context.Background(), primitive.NewObjectID(), "notahex", "T", "@A", "June 1")
	if !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound for malformed id, got %v", err)
	}
}

func TestSetTaskCompletion(t *testing.T) {
	t.Parallel()
	store := &fakeProjectStore{}
	service := NewProjectService(store)
	owner := primitive.NewObjectID()

	project, err := service.CreateProject(context.Background(), owner, "P", "D")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	project, err = service.AddTask(context.Background(), owner, project.ID.Hex(), "T1", "@A", "June 1")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	taskID := project.Tasks[0].ID

	project, err = service.SetTaskCompletion(context.Background(), owner, project.ID.Hex(), taskID, true)
	if err != nil {
		t.Fatalf("SetTaskCompletion failed: %v", err)
	}
	if !project.Tasks[0].Completed {
		t.Error("Expected task to be completed")
	}

	// Setting the same flag again changes nothing.
	project, err = service.SetTaskCompletion(context.Background(), owner, project.ID.Hex(), taskID, true)
	if err != nil {
		t.Fatalf("Second SetTaskCompletion failed: %v", err)
	}
	if !project.Tasks[0].Completed || len(project.Tasks) != 1 {
		t.Error("Repeating the same flag must be idempotent")
	}

	project, err = service.SetTaskCompletion(context.Background(), owner, project.ID.Hex(), taskID, false)
	if err != nil {
		t.Fatalf("SetTaskCompletion failed: %v", err)
	}
	if project.Tasks[0].Completed {
		t.Error("Expected task to be incomplete again")
	}
}

func TestSetTaskCompletion_TaskMissing(t *testing.T) {
	t.Parallel()
	service := NewProjectService(&fakeProjectStore{})
	owner := primitive.NewObjectID()

	project, err := service.CreateProject(context.Background(), owner, "P", "D")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	_, err = service.SetTaskCompletion(context.Background(), owner, project.ID.Hex(), "no-such-task", true)
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

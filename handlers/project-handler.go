package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"effica-project/backend/collab-service/services"
)

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AddTaskRequest struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Completed bool `json:"completed"`
}

type ProjectHandler struct {
	ProjectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{ProjectService: projectService}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
		return
	}

	project, err := h.ProjectService.CreateProject(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		respondError(w, err, "Error creating project")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Project created",
		"project": project,
	})
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	projects, err := h.ProjectService.ListProjects(r.Context(), userID)
	if err != nil {
		respondError(w, err, "Error fetching projects")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"projects": projects,
	})
}

func (h *ProjectHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	projectID := mux.Vars(r)["projectId"]

	var req AddTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
		return
	}

	project, err := h.ProjectService.AddTask(r.Context(), userID, projectID, req.Title, req.Assignee, req.DueDate)
	if err != nil {
		respondError(w, err, "Error adding task")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Task added",
		"project": project,
	})
}

func (h *ProjectHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	projectID := vars["projectId"]
	taskID := vars["taskId"]

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
		return
	}

	project, err := h.ProjectService.SetTaskCompletion(r.Context(), userID, projectID, taskID, req.Completed)
	if err != nil {
		respondError(w, err, "Error updating task")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Task updated",
		"project": project,
	})
}

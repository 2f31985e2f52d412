package handlers

import (
	"github.com/gorilla/mux"

	"effica-project/backend/collab-service/middleware"
)

// SetupRouter wires every route. Registration and login stay open; the rest
// of the API sits behind the JWT guard.
func SetupRouter(auth *AuthHandler, projects *ProjectHandler, comments *CommentHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", Health).Methods("GET")
	r.HandleFunc("/api/auth/register", auth.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", auth.Login).Methods("POST")

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.JWTAuthMiddleware)
	protected.HandleFunc("/projects", projects.ListProjects).Methods("GET")
	protected.HandleFunc("/projects", projects.CreateProject).Methods("POST")
	protected.HandleFunc("/projects/{projectId}/tasks", projects.AddTask).Methods("POST")
	protected.HandleFunc("/projects/{projectId}/tasks/{taskId}", projects.UpdateTask).Methods("PATCH")
	protected.HandleFunc("/comments", comments.PostComment).Methods("POST")
	protected.HandleFunc("/comments", comments.ListComments).Methods("GET")

	return r
}

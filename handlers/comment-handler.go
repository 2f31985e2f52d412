package handlers

import (
	"encoding/json"
	"net/http"

	"effica-project/backend/collab-service/services"
)

type PostCommentRequest struct {
	Text string `json:"text"`
}

type CommentHandler struct {
	CommentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{CommentService: commentService}
}

func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	userID, claims, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req PostCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
		return
	}

	comment, err := h.CommentService.PostComment(r.Context(), userID, claims.Name, req.Text)
	if err != nil {
		respondError(w, err, "Error posting comment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment posted",
		"comment": comment,
	})
}

func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), userID)
	if err != nil {
		respondError(w, err, "Error fetching comments")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"comments": comments,
	})
}

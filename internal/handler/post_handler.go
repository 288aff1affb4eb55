package handlers

import (
	"net/http"
	"qaforum/internal/repository"
	"qaforum/internal/service"

	"github.com/gorilla/mux"
)

type CreatePostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		writeServiceError(w, err, "Пост не найден")
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err, "Пост не найден")
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := service.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := h.decodeJSON(r, &req); err != nil {
		WriteError(w, "Отсутствует заголовок", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), repository.CreatePostRequest{
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		writeServiceError(w, err, "Пост не найден")
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := service.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeServiceError(w, err, "Пост не найден")
		return
	}

	WriteJSON(w, MessageResponse{Message: "Пост удален"}, http.StatusOK)
}

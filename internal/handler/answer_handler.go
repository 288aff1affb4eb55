package handlers

import (
	"net/http"
	"qaforum/internal/repository"
	"qaforum/internal/service"

	"github.com/gorilla/mux"
)

type CreateAnswerRequest struct {
	Body string `json:"body" validate:"required"`
}

func (h *Handlers) GetAnswers(w http.ResponseWriter, r *http.Request) {
	answers, err := h.AnswerService.ListAnswers(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err, "Ответ не найден")
		return
	}

	WriteJSON(w, answers, http.StatusOK)
}

func (h *Handlers) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	authorID, ok := service.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateAnswerRequest
	if err := h.decodeJSON(r, &req); err != nil {
		WriteError(w, "Текст ответа обязателен", http.StatusBadRequest)
		return
	}

	answer, err := h.AnswerService.CreateAnswer(r.Context(), repository.CreateAnswerRequest{
		PostID:   mux.Vars(r)["id"],
		AuthorID: authorID,
		Body:     req.Body,
	})
	if err != nil {
		writeServiceError(w, err, "Ответ не найден")
		return
	}

	WriteJSON(w, answer, http.StatusCreated)
}

func (h *Handlers) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := service.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := h.AnswerService.DeleteAnswer(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeServiceError(w, err, "Ответ не найден")
		return
	}

	WriteJSON(w, MessageResponse{Message: "Ответ удален"}, http.StatusOK)
}

package handlers

import (
	"net/http"
	"qaforum/internal/service"
)

type ProtectedResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// GetCurrentUser returns the public profile of the token holder.
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := service.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Пользователь не найден")
		return
	}

	WriteJSON(w, user.Author(), http.StatusOK)
}

func (h *Handlers) Protected(w http.ResponseWriter, r *http.Request) {
	userID, ok := service.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	WriteJSON(w, ProtectedResponse{Message: "Доступ к защищенному маршруту получен", UserID: userID}, http.StatusOK)
}

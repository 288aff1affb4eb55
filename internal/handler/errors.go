package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"qaforum/internal/repository"
	"qaforum/internal/service"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

// WriteJSON - функция для успешных ответов
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Ошибка записи ответа: %v", err)
	}
}

// writeServiceError maps service and repository errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, "Неверный email или пароль", http.StatusBadRequest)
	case errors.Is(err, repository.ErrEmailTaken):
		WriteError(w, "Email уже существует", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidToken):
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, notFoundMessage, http.StatusNotFound)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// decodeJSON reads the request body into dst and runs struct validation.
func (h *Handlers) decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("Неверный формат запроса")
	}
	if err := h.Validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fe := range validationErrs {
				if fe.Tag() == "email" {
					return errors.New("Неверный формат email")
				}
			}
		}
		return errors.New("Неверные данные")
	}
	return nil
}

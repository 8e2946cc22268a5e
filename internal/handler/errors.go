package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDomainError maps repository/service errors onto HTTP statuses.
// Unexpected errors are logged in full but the client gets a generic message.
func WriteDomainError(w http.ResponseWriter, err error) {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "не найден"):
		WriteError(w, msg, http.StatusNotFound)
	case strings.Contains(msg, "неверное имя продавца или пароль"),
		strings.Contains(msg, "нет прав"),
		strings.Contains(msg, "только одобренный продавец"):
		WriteError(w, msg, http.StatusForbidden)
	case strings.Contains(msg, "уже существует"):
		WriteError(w, msg, http.StatusConflict)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

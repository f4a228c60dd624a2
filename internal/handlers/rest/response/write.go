package response

import (
	"encoding/json"
	"net/http"

	"logistics/internal/generated/dto"
)

const internalErrorMessage = "internal error"

// WriteJSON пишет статус и тело ответа. Ошибка кодирования возвращается для логирования.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(body)
}

// WriteError отдает клиенту текст бизнес-ошибки, для 5xx текст скрывается.
func WriteError(w http.ResponseWriter, status int, err error) error {
	message := internalErrorMessage
	if status < http.StatusInternalServerError && err != nil {
		message = err.Error()
	}

	return WriteJSON(w, status, dto.Error{Error: message})
}

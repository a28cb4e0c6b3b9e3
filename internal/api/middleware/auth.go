package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Заголовок с идентификатором организации, проставляется API-шлюзом
const orgIDHeader = "X-Org-ID"

// Auth проверяет наличие корректного X-Org-ID заголовка
// Собственно аутентификацию выполняет шлюз; сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID := r.Header.Get(orgIDHeader)
		if orgID == "" {
			respondUnauthorized(w, "отсутствует заголовок X-Org-ID")
			return
		}

		if _, err := strconv.ParseInt(orgID, 10, 64); err != nil {
			respondUnauthorized(w, "некорректный заголовок X-Org-ID")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

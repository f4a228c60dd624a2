package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template возвращает шаблон mux-роута ("/deliveryman/{id}"), иначе сырой путь.
// Шаблон держит кардинальность лейблов метрик под контролем.
func Template(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}

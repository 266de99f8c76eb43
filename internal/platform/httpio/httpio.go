// Package httpio reúne el glue HTTP compartido por los handlers de dominio.
package httpio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"creature-reviews/internal/ports/storage"

	"github.com/go-chi/chi/v5"
)

var ErrBadID = errors.New("invalid id")

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodifica el body y rechaza campos desconocidos.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// WriteError traduce los errores de storage a status HTTP.
// Lo que no reconoce se responde como 500 sin exponer el detalle.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrConflict):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrInvalidReference):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrNotImplemented):
		http.Error(w, "not implemented", http.StatusNotImplemented)
	case errors.Is(err, storage.ErrNoRowsAffected):
		http.Error(w, "something went wrong while saving", http.StatusInternalServerError)
	case errors.Is(err, ErrBadID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// PathID lee un parámetro de ruta chi como id positivo.
func PathID(r *http.Request, name string) (int64, error) {
	return parseID(chi.URLParam(r, name))
}

// QueryID lee un id positivo de la query string (?ownerId=1).
func QueryID(r *http.Request, name string) (int64, error) {
	return parseID(r.URL.Query().Get(name))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadID
	}
	return id, nil
}

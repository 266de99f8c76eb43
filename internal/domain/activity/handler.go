package activity

import (
	"errors"
	"net/http"

	"creature-reviews/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/activitylog", func(ar chi.Router) {
		ar.Get("/", listActivityHandler(svc))
		ar.Post("/", createActivityHandler(svc))
	})
}

type createActivityRequest struct {
	OwnerID  int64  `json:"ownerId"`
	Activity string `json:"activity"`
}

// listActivityHandler godoc
// @Summary Listar activity log
// @Tags activitylog
// @Produce json
// @Success 200 {array} Entry
// @Router /activitylog [get]
func listActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if items == nil {
			items = []Entry{}
		}
		httpio.WriteJSON(w, http.StatusOK, items)
	}
}

// createActivityHandler godoc
// @Summary Registrar actividad
// @Description Todavía no implementado: responde 501.
// @Tags activitylog
// @Accept json
// @Param payload body createActivityRequest true "Actividad"
// @Failure 501 {string} string "not implemented"
// @Router /activitylog [post]
func createActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createActivityRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		e, err := svc.Create(r.Context(), CreateInput{OwnerID: req.OwnerID, Activity: req.Activity})
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusCreated, e)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	httpio.WriteError(w, err)
}

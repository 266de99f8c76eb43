package countries

import (
	"errors"
	"net/http"

	"creature-reviews/internal/domain/owners"
	"creature-reviews/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/country", func(cr chi.Router) {
		cr.Get("/", listCountriesHandler(svc))
		cr.Get("/{countryID}", getCountryHandler(svc))
		cr.Get("/owner/{ownerID}", countryByOwnerHandler(svc))
		cr.Get("/{countryID}/owner", ownersByCountryHandler(svc))

		cr.Post("/", createCountryHandler(svc))
		cr.Put("/{countryID}", updateCountryHandler(svc))
		cr.Delete("/{countryID}", deleteCountryHandler(svc))
	})
}

type countryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func listCountriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if items == nil {
			items = []Country{}
		}
		httpio.WriteJSON(w, http.StatusOK, items)
	}
}

func getCountryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "countryID")
		if err != nil {
			writeError(w, err)
			return
		}
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, c)
	}
}

func countryByOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "ownerID")
		if err != nil {
			writeError(w, err)
			return
		}
		c, err := svc.CountryByOwner(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, c)
	}
}

func ownersByCountryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "countryID")
		if err != nil {
			writeError(w, err)
			return
		}
		items, err := svc.OwnersByCountry(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if items == nil {
			items = []owners.Owner{}
		}
		httpio.WriteJSON(w, http.StatusOK, items)
	}
}

func createCountryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req countryRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		c, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusCreated, c)
	}
}

func updateCountryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "countryID")
		if err != nil {
			writeError(w, err)
			return
		}
		var req countryRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ID != 0 && req.ID != id {
			http.Error(w, "id mismatch", http.StatusBadRequest)
			return
		}
		c, err := svc.Update(r.Context(), Country{ID: id, Name: req.Name})
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, c)
	}
}

// deleteCountryHandler godoc
// @Summary Borrar país
// @Description Un país con owners no se puede borrar.
// @Tags country
// @Param countryID path int true "ID del país"
// @Success 204
// @Failure 404 {string} string "not found"
// @Failure 422 {string} string "país con owners"
// @Router /country/{countryID} [delete]
func deleteCountryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "countryID")
		if err != nil {
			writeError(w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	httpio.WriteError(w, err)
}

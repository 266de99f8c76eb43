package owners

import (
	"errors"
	"net/http"

	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owner", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Get("/creature/{creatureID}", ownersByCreatureHandler(svc))
		or.Get("/{ownerID}/creature", creaturesByOwnerHandler(svc))

		or.Post("/", createOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type ownerRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Gym  string `json:"gym"`
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, nonNil(items))
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "ownerID")
		if err != nil {
			writeError(w, err)
			return
		}
		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, o)
	}
}

func ownersByCreatureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "creatureID")
		if err != nil {
			writeError(w, err)
			return
		}
		items, err := svc.OwnersByCreature(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, nonNil(items))
	}
}

func creaturesByOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "ownerID")
		if err != nil {
			writeError(w, err)
			return
		}
		items, err := svc.CreaturesByOwner(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, creatures.ToResponses(items))
	}
}

// createOwnerHandler godoc
// @Summary Crear owner
// @Tags owner
// @Accept json
// @Produce json
// @Param countryId query int true "ID del país"
// @Param payload body ownerRequest true "Datos del owner"
// @Success 201 {object} Owner
// @Failure 400 {string} string "invalid json / countryId inválido"
// @Failure 422 {string} string "nombre repetido / país inexistente"
// @Router /owner [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		countryID, err := httpio.QueryID(r, "countryId")
		if err != nil {
			writeError(w, err)
			return
		}
		var req ownerRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		o, err := svc.Create(r.Context(), CreateInput{Name: req.Name, Gym: req.Gym, CountryID: countryID})
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusCreated, o)
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "ownerID")
		if err != nil {
			writeError(w, err)
			return
		}
		var req ownerRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ID != 0 && req.ID != id {
			http.Error(w, "id mismatch", http.StatusBadRequest)
			return
		}
		o, err := svc.Update(r.Context(), id, req.Name, req.Gym)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, o)
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "ownerID")
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

func nonNil(items []Owner) []Owner {
	if items == nil {
		return []Owner{}
	}
	return items
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	httpio.WriteError(w, err)
}

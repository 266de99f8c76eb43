package creatures

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"creature-reviews/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/creature", func(cr chi.Router) {
		cr.Get("/", listCreaturesHandler(svc))
		cr.Get("/{creatureID}", getCreatureHandler(svc))
		cr.Get("/{creatureID}/rating", getRatingHandler(svc))

		// ownerId y categoryId van por query
		cr.Post("/", createCreatureHandler(svc))
		cr.Put("/{creatureID}", updateCreatureHandler(svc))
		cr.Delete("/{creatureID}", deleteCreatureHandler(svc))
	})
}

type creatureRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
}

// Response es la representación pública de una criatura.
type Response struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

type ratingResponse struct {
	CreatureID int64  `json:"creatureId"`
	Rating     string `json:"rating"`
}

func listCreaturesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}

func getCreatureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "creatureID")
		if err != nil {
			writeError(w, err)
			return
		}
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, toResponse(c))
	}
}

// getRatingHandler godoc
// @Summary Rating promedio de una criatura
// @Description Promedio de los ratings de sus reviews; 0 si no tiene ninguna.
// @Tags creature
// @Produce json
// @Param creatureID path int true "ID de la criatura"
// @Success 200 {object} ratingResponse
// @Failure 404 {string} string "not found"
// @Router /creature/{creatureID}/rating [get]
func getRatingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "creatureID")
		if err != nil {
			writeError(w, err)
			return
		}
		avg, err := svc.Rating(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, ratingResponse{CreatureID: id, Rating: avg.String()})
	}
}

// createCreatureHandler godoc
// @Summary Crear criatura
// @Description Crea la criatura y sus asociaciones con owner y category en un único commit.
// @Tags creature
// @Accept json
// @Produce json
// @Param ownerId query int true "ID del owner"
// @Param categoryId query int true "ID de la category"
// @Param payload body creatureRequest true "birthDate en formato YYYY-MM-DD"
// @Success 201 {object} Response
// @Failure 400 {string} string "invalid json / ids inválidos"
// @Failure 422 {string} string "nombre repetido / owner o category inexistente"
// @Router /creature [post]
func createCreatureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := httpio.QueryID(r, "ownerId")
		if err != nil {
			writeError(w, err)
			return
		}
		categoryID, err := httpio.QueryID(r, "categoryId")
		if err != nil {
			writeError(w, err)
			return
		}

		var req creatureRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		bd, err := parseBirthDate(req.BirthDate)
		if err != nil {
			http.Error(w, "birthDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			BirthDate:  bd,
			OwnerID:    ownerID,
			CategoryID: categoryID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusCreated, toResponse(c))
	}
}

func updateCreatureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "creatureID")
		if err != nil {
			writeError(w, err)
			return
		}

		var req creatureRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ID != 0 && req.ID != id {
			http.Error(w, "id mismatch", http.StatusBadRequest)
			return
		}
		bd, err := parseBirthDate(req.BirthDate)
		if err != nil {
			http.Error(w, "birthDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		// ownerId/categoryId son opcionales acá y el service los ignora
		ownerID, _ := httpio.QueryID(r, "ownerId")
		categoryID, _ := httpio.QueryID(r, "categoryId")

		c, err := svc.Update(r.Context(), id, UpdateInput{
			Name:       req.Name,
			BirthDate:  bd,
			OwnerID:    ownerID,
			CategoryID: categoryID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, toResponse(c))
	}
}

func deleteCreatureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "creatureID")
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

func parseBirthDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func toResponse(c Creature) Response {
	out := Response{ID: c.ID, Name: c.Name}
	if !c.BirthDate.IsZero() {
		out.BirthDate = c.BirthDate.Format(dateLayout)
	}
	return out
}

// ToResponses lo usan también los endpoints de relación de owners y categories.
func ToResponses(items []Creature) []Response {
	out := make([]Response, 0, len(items))
	for _, c := range items {
		out = append(out, toResponse(c))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	httpio.WriteError(w, err)
}

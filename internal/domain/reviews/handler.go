package reviews

import (
	"errors"
	"net/http"

	"creature-reviews/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/review", func(rr chi.Router) {
		rr.Get("/", listReviewsHandler(svc))
		rr.Get("/{reviewID}", getReviewHandler(svc))
		rr.Get("/creature/{creatureID}", reviewsByCreatureHandler(svc))

		rr.Post("/", createReviewHandler(svc))
		rr.Put("/{reviewID}", updateReviewHandler(svc))
		rr.Delete("/{reviewID}", deleteReviewHandler(svc))
	})
}

type reviewRequest struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

func listReviewsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, NonNil(items))
	}
}

func getReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "reviewID")
		if err != nil {
			WriteError(w, err)
			return
		}
		rv, err := svc.GetByID(r.Context(), id)
		if err != nil {
			WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, rv)
	}
}

func reviewsByCreatureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "creatureID")
		if err != nil {
			WriteError(w, err)
			return
		}
		items, err := svc.ListByCreature(r.Context(), id)
		if err != nil {
			WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, NonNil(items))
	}
}

// createReviewHandler godoc
// @Summary Crear review
// @Tags review
// @Accept json
// @Produce json
// @Param reviewerId query int true "ID del reviewer"
// @Param creatureId query int true "ID de la criatura"
// @Param payload body reviewRequest true "rating entre 1 y 10"
// @Success 201 {object} Review
// @Failure 400 {string} string "invalid json / rating fuera de rango"
// @Failure 422 {string} string "criatura o reviewer inexistente"
// @Router /review [post]
func createReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewerID, err := httpio.QueryID(r, "reviewerId")
		if err != nil {
			WriteError(w, err)
			return
		}
		creatureID, err := httpio.QueryID(r, "creatureId")
		if err != nil {
			WriteError(w, err)
			return
		}
		var req reviewRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rv, err := svc.Create(r.Context(), CreateInput{
			Title:      req.Title,
			Text:       req.Text,
			Rating:     req.Rating,
			CreatureID: creatureID,
			ReviewerID: reviewerID,
		})
		if err != nil {
			WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusCreated, rv)
	}
}

func updateReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "reviewID")
		if err != nil {
			WriteError(w, err)
			return
		}
		var req reviewRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ID != 0 && req.ID != id {
			http.Error(w, "id mismatch", http.StatusBadRequest)
			return
		}
		rv, err := svc.Update(r.Context(), id, req.Title, req.Text, req.Rating)
		if err != nil {
			WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, rv)
	}
}

func deleteReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "reviewID")
		if err != nil {
			WriteError(w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func NonNil(items []Review) []Review {
	if items == nil {
		return []Review{}
	}
	return items
}

// WriteError lo reutiliza reviewers para GET /reviewer/{id}/review.
func WriteError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidRating) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	httpio.WriteError(w, err)
}

package reviewers

import (
	"errors"
	"net/http"

	"creature-reviews/internal/domain/reviews"
	"creature-reviews/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reviewer", func(rr chi.Router) {
		rr.Get("/", listReviewersHandler(svc))
		rr.Get("/{reviewerID}", getReviewerHandler(svc))
		rr.Get("/{reviewerID}/review", reviewsByReviewerHandler(svc))

		rr.Post("/", createReviewerHandler(svc))
		rr.Put("/{reviewerID}", updateReviewerHandler(svc))
		rr.Delete("/{reviewerID}", deleteReviewerHandler(svc))
	})
}

type reviewerRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func listReviewersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if items == nil {
			items = []Reviewer{}
		}
		httpio.WriteJSON(w, http.StatusOK, items)
	}
}

func getReviewerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "reviewerID")
		if err != nil {
			writeError(w, err)
			return
		}
		rv, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, rv)
	}
}

func reviewsByReviewerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "reviewerID")
		if err != nil {
			writeError(w, err)
			return
		}
		items, err := svc.Reviews(r.Context(), id)
		if err != nil {
			reviews.WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, reviews.NonNil(items))
	}
}

func createReviewerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reviewerRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		rv, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusCreated, rv)
	}
}

func updateReviewerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "reviewerID")
		if err != nil {
			writeError(w, err)
			return
		}
		var req reviewerRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ID != 0 && req.ID != id {
			http.Error(w, "id mismatch", http.StatusBadRequest)
			return
		}
		rv, err := svc.Update(r.Context(), Reviewer{ID: id, Name: req.Name})
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, rv)
	}
}

func deleteReviewerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "reviewerID")
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

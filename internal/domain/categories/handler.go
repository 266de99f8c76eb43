package categories

import (
	"errors"
	"net/http"

	"creature-reviews/internal/domain/creatures"
	"creature-reviews/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/category", func(cr chi.Router) {
		// Listado servido por el cache (puede estar desactualizado hasta que vence)
		cr.Get("/", listCategoriesHandler(svc))
		cr.Get("/{categoryID}", getCategoryHandler(svc))
		cr.Get("/creature/{categoryID}", listCreaturesHandler(svc))

		cr.Post("/", createCategoryHandler(svc))
		cr.Put("/{categoryID}", updateCategoryHandler(svc))
		cr.Delete("/{categoryID}", deleteCategoryHandler(svc))
	})
}

type categoryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// listCategoriesHandler godoc
// @Summary Listar categories
// @Description Lectura cacheada (1m absoluto, 10s sliding). Crear o editar una category no invalida el cache.
// @Tags category
// @Produce json
// @Success 200 {array} Category
// @Router /category [get]
func listCategoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if items == nil {
			items = []Category{}
		}
		httpio.WriteJSON(w, http.StatusOK, items)
	}
}

func getCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "categoryID")
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

func listCreaturesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "categoryID")
		if err != nil {
			writeError(w, err)
			return
		}
		items, err := svc.CreaturesByCategory(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, creatures.ToResponses(items))
	}
}

func createCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
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

func updateCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "categoryID")
		if err != nil {
			writeError(w, err)
			return
		}
		var req categoryRequest
		if err := httpio.DecodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ID != 0 && req.ID != id {
			http.Error(w, "id mismatch", http.StatusBadRequest)
			return
		}
		c, err := svc.Update(r.Context(), Category{ID: id, Name: req.Name})
		if err != nil {
			writeError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, c)
	}
}

func deleteCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.PathID(r, "categoryID")
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

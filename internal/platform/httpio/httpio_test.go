package httpio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"creature-reviews/internal/ports/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{storage.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("category %q: %w", "Fire", storage.ErrConflict), http.StatusUnprocessableEntity},
		{storage.ErrInvalidReference, http.StatusUnprocessableEntity},
		{storage.ErrNotImplemented, http.StatusNotImplemented},
		{fmt.Errorf("delete owner: %w", storage.ErrNoRowsAffected), http.StatusInternalServerError},
		{ErrBadID, http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		WriteError(rr, tc.err)
		assert.Equal(t, tc.want, rr.Code, tc.err.Error())
	}
}

func TestPathAndQueryID(t *testing.T) {
	r := chi.NewRouter()
	var gotPath, gotQuery int64
	var pathErr, queryErr error
	r.Get("/x/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotPath, pathErr = PathID(r, "id")
		gotQuery, queryErr = QueryID(r, "ownerId")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/12?ownerId=3", nil))
	require.NoError(t, pathErr)
	require.NoError(t, queryErr)
	assert.EqualValues(t, 12, gotPath)
	assert.EqualValues(t, 3, gotQuery)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x/abc?ownerId=-1", nil))
	assert.ErrorIs(t, pathErr, ErrBadID)
	assert.ErrorIs(t, queryErr, ErrBadID)
}

package restapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargoshop/cargoshop/internal/domain"
)

// Every protected route must answer 401 when no token is presented.
func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	ws, _ := newTestAPI(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/products"},
		{http.MethodGet, "/products/x"},
		{http.MethodPut, "/products/x"},
		{http.MethodDelete, "/products/x"},
		{http.MethodGet, "/pechinchas"},
		{http.MethodPost, "/pechinchas"},
		{http.MethodGet, "/pechinchas/x"},
		{http.MethodPut, "/pechinchas/x"},
		{http.MethodDelete, "/pechinchas/x"},
		{http.MethodGet, "/pedidos"},
		{http.MethodPost, "/pedidos"},
		{http.MethodGet, "/pedidos/x"},
		{http.MethodPut, "/pedidos/x"},
		{http.MethodDelete, "/pedidos/x"},
		{http.MethodGet, "/reviews"},
		{http.MethodPost, "/reviews"},
		{http.MethodGet, "/reviews/x"},
		{http.MethodPut, "/reviews/x"},
		{http.MethodDelete, "/reviews/x"},
		{http.MethodPost, "/imageUpload"},
	}
	for _, tc := range cases {
		rec := doJSON(t, ws, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

// A syntactically valid token for a user that no longer exists must not
// grant access.
func TestDeletedUserTokenRejected(t *testing.T) {
	ws, deps := newTestAPI(t)
	token := signupUser(t, ws, "ghost", "pw")

	rec := doJSON(t, ws, http.MethodGet, "/pechinchas", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, deps.st.Delete(context.Background(), domain.TableUsers, "ghost"))

	rec = doJSON(t, ws, http.MethodGet, "/pechinchas", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

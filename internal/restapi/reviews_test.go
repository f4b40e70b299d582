package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargoshop/cargoshop/internal/domain"
)

func reviewBody() map[string]interface{} {
	return map[string]interface{}{
		"orderId": "order-1",
		"buyer":   "bob",
		"seller":  "alice",
		"rate":    4,
		"message": "Entrega rápida",
	}
}

func TestReviewCreateGetRoundTrip(t *testing.T) {
	ws, _ := newTestAPI(t)
	token := signupUser(t, ws, "bob", "pw")

	rec := doJSON(t, ws, http.MethodPost, "/reviews", token, reviewBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var review domain.Review
	decode(t, rec, &review)
	require.NotEmpty(t, review.ID)
	assert.Equal(t, "order-1", review.OrderID)
	assert.Equal(t, 4, review.Rate)

	rec = doJSON(t, ws, http.MethodGet, "/reviews/"+review.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Review
	decode(t, rec, &got)
	assert.Equal(t, review, got)
}

func TestReviewRateBounds(t *testing.T) {
	ws, _ := newTestAPI(t)
	token := signupUser(t, ws, "bob", "pw")

	body := reviewBody()
	body["rate"] = 6
	rec := doJSON(t, ws, http.MethodPost, "/reviews", token, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body["rate"] = -1
	rec = doJSON(t, ws, http.MethodPost, "/reviews", token, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewGetMissing(t *testing.T) {
	ws, _ := newTestAPI(t)
	token := signupUser(t, ws, "bob", "pw")

	rec := doJSON(t, ws, http.MethodGet, "/reviews/nope", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Review not found"}`, rec.Body.String())
}

func TestReviewUpdateAndDelete(t *testing.T) {
	ws, _ := newTestAPI(t)
	token := signupUser(t, ws, "bob", "pw")

	rec := doJSON(t, ws, http.MethodPost, "/reviews", token, reviewBody())
	require.Equal(t, http.StatusOK, rec.Code)
	var review domain.Review
	decode(t, rec, &review)

	update := reviewBody()
	update["rate"] = 2
	update["message"] = "Produto chegou riscado"
	rec = doJSON(t, ws, http.MethodPut, "/reviews/"+review.ID, token, update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated domain.Review
	decode(t, rec, &updated)
	assert.Equal(t, 2, updated.Rate)
	assert.Equal(t, "Produto chegou riscado", updated.Message)

	rec = doJSON(t, ws, http.MethodDelete, "/reviews/"+review.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+review.ID+`"}`, rec.Body.String())

	rec = doJSON(t, ws, http.MethodGet, "/reviews/"+review.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

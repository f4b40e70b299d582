package restapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cargoshop/cargoshop/internal/domain"
)

type reviewPayload struct {
	OrderID string `json:"orderId" validate:"required"`
	Buyer   string `json:"buyer" validate:"required"`
	Seller  string `json:"seller"`
	Rate    int    `json:"rate" validate:"gte=0,lte=5"`
	Message string `json:"message"`
}

func (a *API) listReviews(c echo.Context) error {
	reviews := make([]domain.Review, 0)
	if err := a.deps.Store().Scan(c.Request().Context(), domain.TableReviews, &reviews); err != nil {
		zap.S().Errorf("list reviews failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to retrieve reviews")
	}
	return ok(c, reviews)
}

func (a *API) createReview(c echo.Context) error {
	var payload reviewPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	review := domain.Review{
		ID:      uuid.NewString(),
		OrderID: payload.OrderID,
		Buyer:   payload.Buyer,
		Seller:  payload.Seller,
		Rate:    payload.Rate,
		Message: payload.Message,
	}
	if err := a.deps.Store().Put(c.Request().Context(), domain.TableReviews, review.ID, review); err != nil {
		zap.S().Errorf("create review failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to create review")
	}

	a.deps.Bus().Publish(domain.EventReviewUpdated)
	return ok(c, review)
}

func (a *API) getReview(c echo.Context) error {
	var review domain.Review
	found, err := a.deps.Store().Get(c.Request().Context(), domain.TableReviews, c.Param("id"), &review)
	if err != nil {
		zap.S().Errorf("get review failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to get review")
	}
	if !found {
		return fail(c, http.StatusNotFound, "Review not found")
	}
	return ok(c, review)
}

func (a *API) updateReview(c echo.Context) error {
	var payload reviewPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	attrs := map[string]interface{}{
		"orderId": payload.OrderID,
		"buyer":   payload.Buyer,
		"seller":  payload.Seller,
		"rate":    payload.Rate,
		"message": payload.Message,
	}
	var review domain.Review
	if err := a.deps.Store().Update(c.Request().Context(), domain.TableReviews, c.Param("id"), attrs, &review); err != nil {
		zap.S().Errorf("update review failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to update review")
	}

	a.deps.Bus().Publish(domain.EventReviewUpdated)
	return ok(c, review)
}

func (a *API) deleteReview(c echo.Context) error {
	id := c.Param("id")
	if err := a.deps.Store().Delete(c.Request().Context(), domain.TableReviews, id); err != nil {
		zap.S().Errorf("delete review failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to delete review")
	}

	a.deps.Bus().Publish(domain.EventReviewUpdated)
	return ok(c, echo.Map{"id": id})
}

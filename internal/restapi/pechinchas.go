package restapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cargoshop/cargoshop/internal/domain"
)

type pechinchaCreatePayload struct {
	IDProduct string  `json:"idProduct" validate:"required"`
	Discount  float64 `json:"discount" validate:"required,gt=0"`
	Buyer     string  `json:"buyer" validate:"required"`
	Pstatus   string  `json:"pstatus" validate:"omitempty,oneof=pendente"`
}

type pechinchaUpdatePayload struct {
	ProductID string  `json:"productId" validate:"required"`
	Discount  float64 `json:"discount" validate:"required,gt=0"`
	Price     float64 `json:"price"`
	Buyer     string  `json:"buyer" validate:"required"`
	Seller    string  `json:"seller"`
	Pstatus   string  `json:"pstatus" validate:"required,oneof=pendente aceito pago"`
}

func (a *API) listPechinchas(c echo.Context) error {
	pechinchas := make([]domain.Pechincha, 0)
	if err := a.deps.Store().Scan(c.Request().Context(), domain.TablePechinchas, &pechinchas); err != nil {
		zap.S().Errorf("list pechinchas failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to retrieve pechinchas")
	}
	return ok(c, pechinchas)
}

// createPechincha snapshots image, price and seller from the referenced
// product at offer time. The product read and the pechincha write are two
// independent store calls; a concurrent product edit in between is an
// accepted race, last snapshot wins.
func (a *API) createPechincha(c echo.Context) error {
	var payload pechinchaCreatePayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var product domain.Product
	found, err := a.deps.Store().Get(ctx, domain.TableProducts, payload.IDProduct, &product)
	if err != nil {
		zap.S().Errorf("create pechincha product read failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to create pechincha")
	}
	if !found {
		return fail(c, http.StatusNotFound, "Product not found")
	}

	pechincha := domain.Pechincha{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Discount:  payload.Discount,
		Image:     product.Image,
		Price:     product.Price,
		Buyer:     payload.Buyer,
		Seller:    product.Seller,
		Pstatus:   domain.PechinchaPendente,
	}
	if err := a.deps.Store().Put(ctx, domain.TablePechinchas, pechincha.ID, pechincha); err != nil {
		zap.S().Errorf("create pechincha failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to create pechincha")
	}

	a.deps.Bus().Publish(domain.EventPechinchaUpdated)
	return ok(c, pechincha)
}

func (a *API) getPechincha(c echo.Context) error {
	var pechincha domain.Pechincha
	found, err := a.deps.Store().Get(c.Request().Context(), domain.TablePechinchas, c.Param("id"), &pechincha)
	if err != nil {
		zap.S().Errorf("get pechincha failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to get pechincha")
	}
	if !found {
		return fail(c, http.StatusNotFound, "Pechincha not found")
	}
	return ok(c, pechincha)
}

// updatePechincha overwrites the tracked attribute set, refreshing the
// image snapshot from the product. The pstatus move is checked against the
// state machine; the actor is deliberately not: any authenticated user may
// drive a legal transition.
func (a *API) updatePechincha(c echo.Context) error {
	var payload pechinchaUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var current domain.Pechincha
	found, err := a.deps.Store().Get(ctx, domain.TablePechinchas, c.Param("id"), &current)
	if err != nil {
		zap.S().Errorf("update pechincha read failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to update pechincha")
	}
	if !found {
		return fail(c, http.StatusNotFound, "Pechincha not found")
	}
	if !domain.CanTransition(current.Pstatus, payload.Pstatus) {
		return fail(c, http.StatusBadRequest, "Invalid pstatus transition")
	}

	var product domain.Product
	found, err = a.deps.Store().Get(ctx, domain.TableProducts, payload.ProductID, &product)
	if err != nil {
		zap.S().Errorf("update pechincha product read failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to update pechincha")
	}
	if !found {
		return fail(c, http.StatusNotFound, "Product not found")
	}

	attrs := map[string]interface{}{
		"productId": payload.ProductID,
		"discount":  payload.Discount,
		"price":     payload.Price,
		"buyer":     payload.Buyer,
		"seller":    payload.Seller,
		"image":     product.Image,
		"pstatus":   payload.Pstatus,
	}
	var pechincha domain.Pechincha
	if err := a.deps.Store().Update(ctx, domain.TablePechinchas, c.Param("id"), attrs, &pechincha); err != nil {
		zap.S().Errorf("update pechincha failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to update pechincha")
	}

	a.deps.Bus().Publish(domain.EventPechinchaUpdated)
	return ok(c, pechincha)
}

// deletePechincha is how a negotiation is cancelled: the record is removed
// outright, not marked.
func (a *API) deletePechincha(c echo.Context) error {
	id := c.Param("id")
	if err := a.deps.Store().Delete(c.Request().Context(), domain.TablePechinchas, id); err != nil {
		zap.S().Errorf("delete pechincha failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to delete pechincha")
	}

	a.deps.Bus().Publish(domain.EventPechinchaUpdated)
	return ok(c, echo.Map{"id": id})
}

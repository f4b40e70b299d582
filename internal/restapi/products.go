package restapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cargoshop/cargoshop/internal/domain"
)

type productPayload struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Seller      string  `json:"seller" validate:"required"`
	Image       string  `json:"image"`
}

func (a *API) listProducts(c echo.Context) error {
	products := make([]domain.Product, 0)
	if err := a.deps.Store().Scan(c.Request().Context(), domain.TableProducts, &products); err != nil {
		zap.S().Errorf("list products failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to retrieve products")
	}
	return ok(c, products)
}

func (a *API) createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	product := domain.Product{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Price:       payload.Price,
		Description: payload.Description,
		Category:    payload.Category,
		Seller:      payload.Seller,
		Image:       payload.Image,
	}
	if err := a.deps.Store().Put(c.Request().Context(), domain.TableProducts, product.ID, product); err != nil {
		zap.S().Errorf("create product failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to create product")
	}

	a.deps.Bus().Publish(domain.EventProductUpdated)
	return ok(c, product)
}

func (a *API) getProduct(c echo.Context) error {
	var product domain.Product
	found, err := a.deps.Store().Get(c.Request().Context(), domain.TableProducts, c.Param("id"), &product)
	if err != nil {
		zap.S().Errorf("get product failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to get product")
	}
	if !found {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	return ok(c, product)
}

func (a *API) updateProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	attrs := map[string]interface{}{
		"name":        payload.Name,
		"price":       payload.Price,
		"description": payload.Description,
		"category":    payload.Category,
		"seller":      payload.Seller,
		"image":       payload.Image,
	}
	var product domain.Product
	if err := a.deps.Store().Update(c.Request().Context(), domain.TableProducts, c.Param("id"), attrs, &product); err != nil {
		zap.S().Errorf("update product failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to update product")
	}

	a.deps.Bus().Publish(domain.EventProductUpdated)
	return ok(c, product)
}

func (a *API) deleteProduct(c echo.Context) error {
	id := c.Param("id")
	if err := a.deps.Store().Delete(c.Request().Context(), domain.TableProducts, id); err != nil {
		zap.S().Errorf("delete product failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to delete product")
	}

	a.deps.Bus().Publish(domain.EventProductUpdated)
	return ok(c, echo.Map{"id": id})
}

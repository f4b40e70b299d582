package restapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cargoshop/cargoshop/internal/domain"
)

type pedidoCreatePayload struct {
	Endereco       string  `json:"endereco" validate:"required"`
	OpcaoEnvio     string  `json:"opcaoEnvio"`
	FormaPagamento string  `json:"formaPagamento"`
	IDProduto      string  `json:"idProduto"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	NomeVendedor   string  `json:"NomeVendedor"`
	Comprador      string  `json:"comprador" validate:"required"`
	Status         string  `json:"status"`
	// IDPechincha links the order back to the accepted negotiation it pays
	// for; when set, that pechincha is moved to its terminal "pago" state.
	IDPechincha string `json:"idPechincha"`
}

type pedidoUpdatePayload struct {
	Endereco       string  `json:"endereco" validate:"required"`
	OpcaoEnvio     string  `json:"opcaoEnvio"`
	FormaPagamento string  `json:"formaPagamento"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	NomeVendedor   string  `json:"NomeVendedor"`
	Comprador      string  `json:"comprador" validate:"required"`
	Status         string  `json:"status"`
}

func (a *API) listPedidos(c echo.Context) error {
	pedidos := make([]domain.Order, 0)
	if err := a.deps.Store().Scan(c.Request().Context(), domain.TableOrders, &pedidos); err != nil {
		zap.S().Errorf("list pedidos failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to retrieve orders")
	}
	return ok(c, pedidos)
}

func (a *API) createPedido(c echo.Context) error {
	var payload pedidoCreatePayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	ctx := c.Request().Context()

	// Resolve the linked pechincha first so payment on a not-yet-accepted
	// negotiation is rejected before any write happens.
	var pechincha domain.Pechincha
	if payload.IDPechincha != "" {
		found, err := a.deps.Store().Get(ctx, domain.TablePechinchas, payload.IDPechincha, &pechincha)
		if err != nil {
			zap.S().Errorf("create pedido pechincha read failed: %v", err)
			return fail(c, http.StatusInternalServerError, "Failed to create order")
		}
		if !found {
			return fail(c, http.StatusNotFound, "Pechincha not found")
		}
		if !domain.CanTransition(pechincha.Pstatus, domain.PechinchaPago) {
			return fail(c, http.StatusBadRequest, "Pechincha is not accepted")
		}
	}

	pedido := domain.Order{
		ID:             uuid.NewString(),
		Endereco:       payload.Endereco,
		OpcaoEnvio:     payload.OpcaoEnvio,
		FormaPagamento: payload.FormaPagamento,
		IDProduto:      payload.IDProduto,
		Name:           payload.Name,
		Price:          payload.Price,
		Image:          payload.Image,
		NomeVendedor:   payload.NomeVendedor,
		Comprador:      payload.Comprador,
		Status:         payload.Status,
	}
	if err := a.deps.Store().Put(ctx, domain.TableOrders, pedido.ID, pedido); err != nil {
		zap.S().Errorf("create pedido failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to create order")
	}

	if payload.IDPechincha != "" {
		attrs := map[string]interface{}{"pstatus": domain.PechinchaPago}
		if err := a.deps.Store().Update(ctx, domain.TablePechinchas, payload.IDPechincha, attrs, nil); err != nil {
			// The order exists either way; the pechincha stays accepted and
			// surfaces as such on the next fetch.
			zap.S().Errorf("create pedido pechincha transition failed: %v", err)
		} else {
			a.deps.Bus().Publish(domain.EventPechinchaUpdated)
		}
	}

	a.deps.Bus().Publish(domain.EventPedidoUpdated)
	return ok(c, pedido)
}

func (a *API) getPedido(c echo.Context) error {
	var pedido domain.Order
	found, err := a.deps.Store().Get(c.Request().Context(), domain.TableOrders, c.Param("id"), &pedido)
	if err != nil {
		zap.S().Errorf("get pedido failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to retrieve order")
	}
	if !found {
		return fail(c, http.StatusNotFound, "Order not found")
	}
	return ok(c, pedido)
}

// updatePedido rewrites the tracked attribute set. idProduto is not part of
// it, matching the original wire contract.
func (a *API) updatePedido(c echo.Context) error {
	var payload pedidoUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	attrs := map[string]interface{}{
		"endereco":       payload.Endereco,
		"opcaoEnvio":     payload.OpcaoEnvio,
		"formaPagamento": payload.FormaPagamento,
		"name":           payload.Name,
		"price":          payload.Price,
		"image":          payload.Image,
		"NomeVendedor":   payload.NomeVendedor,
		"comprador":      payload.Comprador,
		"status":         payload.Status,
	}
	var pedido domain.Order
	if err := a.deps.Store().Update(c.Request().Context(), domain.TableOrders, c.Param("id"), attrs, &pedido); err != nil {
		zap.S().Errorf("update pedido failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to update order")
	}

	a.deps.Bus().Publish(domain.EventPedidoUpdated)
	return ok(c, pedido)
}

func (a *API) deletePedido(c echo.Context) error {
	id := c.Param("id")
	if err := a.deps.Store().Delete(c.Request().Context(), domain.TableOrders, id); err != nil {
		zap.S().Errorf("delete pedido failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to delete order")
	}

	a.deps.Bus().Publish(domain.EventPedidoUpdated)
	return ok(c, echo.Map{"id": id})
}

// Package restapi implements the marketplace resource endpoints. Every
// handler follows the same shape: validate the session, perform one store
// operation, publish a resource-changed event and return JSON.
package restapi

import (
	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"

	"github.com/cargoshop/cargoshop/config"
	"github.com/cargoshop/cargoshop/internal/store"
	"github.com/cargoshop/cargoshop/internal/webserver"
)

// Deps is the slice of the application the handlers depend on.
type Deps interface {
	Config() *config.AppConfig
	Store() store.Store
	Bus() EventBus.Bus
}

type API struct {
	deps Deps
	ws   *webserver.WebServer
}

func New(deps Deps) *API {
	return &API{deps: deps}
}

// Register wires every route. GET /products is deliberately open while
// GET /products/:id is not, preserving the original access asymmetry.
func (a *API) Register(ws *webserver.WebServer) {
	a.ws = ws
	auth := ws.VerifyUser()
	admin := ws.VerifyAdmin()

	ws.ApiPOST("/users/signup", a.signup)
	ws.ApiPOST("/users/login", a.login)
	ws.ApiGET("/users/logout", a.logout)
	ws.ApiGET("/users", a.listUsers, auth, admin)

	ws.ApiGET("/products", a.listProducts)
	ws.ApiPOST("/products", a.createProduct, auth)
	ws.ApiGET("/products/:id", a.getProduct, auth)
	ws.ApiPUT("/products/:id", a.updateProduct, auth)
	ws.ApiDELETE("/products/:id", a.deleteProduct, auth)

	ws.ApiGET("/pechinchas", a.listPechinchas, auth)
	ws.ApiPOST("/pechinchas", a.createPechincha, auth)
	ws.ApiGET("/pechinchas/:id", a.getPechincha, auth)
	ws.ApiPUT("/pechinchas/:id", a.updatePechincha, auth)
	ws.ApiDELETE("/pechinchas/:id", a.deletePechincha, auth)

	ws.ApiGET("/pedidos", a.listPedidos, auth)
	ws.ApiPOST("/pedidos", a.createPedido, auth)
	ws.ApiGET("/pedidos/:id", a.getPedido, auth)
	ws.ApiPUT("/pedidos/:id", a.updatePedido, auth)
	ws.ApiDELETE("/pedidos/:id", a.deletePedido, auth)

	ws.ApiGET("/reviews", a.listReviews, auth)
	ws.ApiPOST("/reviews", a.createReview, auth)
	ws.ApiGET("/reviews/:id", a.getReview, auth)
	ws.ApiPUT("/reviews/:id", a.updateReview, auth)
	ws.ApiDELETE("/reviews/:id", a.deleteReview, auth)

	ws.ApiPOST("/imageUpload", a.uploadImage, auth)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(200, data)
}

// fail renders the resource error shape {"error": msg}.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"error": msg})
}

// failMessage renders the auth error shape {"message": msg}.
func failMessage(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}

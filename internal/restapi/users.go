package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargoshop/cargoshop/internal/domain"
)

type credentialsPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (a *API) signup(c echo.Context) error {
	var payload credentialsPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), 10)
	if err != nil {
		zap.S().Errorf("signup hash failed: %v", err)
		return failMessage(c, http.StatusInternalServerError, "Falha no registro")
	}

	user := domain.User{
		Username: payload.Username,
		Password: string(hash),
		Admin:    false,
	}
	if err := a.deps.Store().Put(c.Request().Context(), domain.TableUsers, user.Username, user); err != nil {
		zap.S().Errorf("signup put failed: %v", err)
		return failMessage(c, http.StatusInternalServerError, "Falha no registro")
	}

	token, err := a.ws.IssueToken(user.Username, user.Admin)
	if err != nil {
		zap.S().Errorf("signup token failed: %v", err)
		return failMessage(c, http.StatusInternalServerError, "Falha no registro")
	}
	return ok(c, echo.Map{"username": user.Username, "token": token})
}

func (a *API) login(c echo.Context) error {
	var payload credentialsPayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	var user domain.User
	found, err := a.deps.Store().Get(c.Request().Context(), domain.TableUsers, payload.Username, &user)
	if err != nil {
		zap.S().Errorf("login get failed: %v", err)
		return failMessage(c, http.StatusInternalServerError, "Erro interno do servidor")
	}
	if !found {
		return failMessage(c, http.StatusUnauthorized, "Usuário ou senha incorretos!")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		return failMessage(c, http.StatusUnauthorized, "Usuário ou senha incorretos!")
	}

	token, err := a.ws.IssueToken(user.Username, user.Admin)
	if err != nil {
		zap.S().Errorf("login token failed: %v", err)
		return failMessage(c, http.StatusInternalServerError, "Erro interno do servidor")
	}
	return ok(c, echo.Map{"username": user.Username, "token": token, "admin": user.Admin})
}

// logout is stateless; the token stays valid until it expires.
func (a *API) logout(c echo.Context) error {
	return ok(c, echo.Map{"message": "Deslogado com sucesso!"})
}

func (a *API) listUsers(c echo.Context) error {
	users := make([]domain.User, 0)
	if err := a.deps.Store().Scan(c.Request().Context(), domain.TableUsers, &users); err != nil {
		zap.S().Errorf("list users failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to retrieve users")
	}
	for i := range users {
		users[i].Password = ""
	}
	return ok(c, users)
}

package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargoshop/cargoshop/internal/domain"
)

func TestSignupAndLogin(t *testing.T) {
	ws, _ := newTestAPI(t)

	token := signupUser(t, ws, "alice", "pw1")
	assert.NotEmpty(t, token)

	rec := doJSON(t, ws, http.MethodPost, "/users/login", "",
		map[string]string{"username": "alice", "password": "pw1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Username string `json:"username"`
		Token    string `json:"token"`
		Admin    bool   `json:"admin"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.Admin)
}

func TestLoginWrongPassword(t *testing.T) {
	ws, _ := newTestAPI(t)
	signupUser(t, ws, "alice", "pw1")

	rec := doJSON(t, ws, http.MethodPost, "/users/login", "",
		map[string]string{"username": "alice", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "Usuário ou senha incorretos!", resp.Message)
}

func TestLoginUnknownUser(t *testing.T) {
	ws, _ := newTestAPI(t)

	rec := doJSON(t, ws, http.MethodPost, "/users/login", "",
		map[string]string{"username": "ghost", "password": "pw"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutStateless(t *testing.T) {
	ws, _ := newTestAPI(t)

	rec := doJSON(t, ws, http.MethodGet, "/users/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "Deslogado com sucesso!", resp.Message)
}

func TestSignupValidation(t *testing.T) {
	ws, _ := newTestAPI(t)

	rec := doJSON(t, ws, http.MethodPost, "/users/signup",
		"", map[string]string{"username": "nopass"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsersAdminOnly(t *testing.T) {
	ws, deps := newTestAPI(t)

	userToken := signupUser(t, ws, "bob", "pw")
	rec := doJSON(t, ws, http.MethodGet, "/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	seedAdmin(t, deps, "root", "rootpw")
	rec = doJSON(t, ws, http.MethodPost, "/users/login", "",
		map[string]string{"username": "root", "password": "rootpw"})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
		Admin bool   `json:"admin"`
	}
	decode(t, rec, &login)
	require.True(t, login.Admin)

	rec = doJSON(t, ws, http.MethodGet, "/users", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []domain.User
	decode(t, rec, &users)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

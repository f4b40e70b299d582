package restapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asaskevich/EventBus"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargoshop/cargoshop/config"
	"github.com/cargoshop/cargoshop/internal/domain"
	"github.com/cargoshop/cargoshop/internal/store"
	"github.com/cargoshop/cargoshop/internal/webserver"
)

var tjson = jsoniter.ConfigCompatibleWithStandardLibrary

type testDeps struct {
	cfg *config.AppConfig
	st  store.Store
	bus EventBus.Bus
}

func (d *testDeps) Config() *config.AppConfig { return d.cfg }
func (d *testDeps) Store() store.Store        { return d.st }
func (d *testDeps) Bus() EventBus.Bus         { return d.bus }

func newTestAPI(t *testing.T) (*webserver.WebServer, *testDeps) {
	t.Helper()
	cfg := config.DefaultAppConfig
	cfg.Database.Type = "memory"
	cfg.System.Workdir = t.TempDir()

	deps := &testDeps{
		cfg: &cfg,
		st:  store.NewMemoryStore(),
		bus: EventBus.New(),
	}
	ws := webserver.New(deps)
	api := New(deps)
	api.Register(ws)
	return ws, deps
}

func doJSON(t *testing.T, ws *webserver.WebServer, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := tjson.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(http.CanonicalHeaderKey("Content-Type"), "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ws.Root().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, tjson.Unmarshal(rec.Body.Bytes(), out))
}

// signupUser registers a user and returns a bearer token for it.
func signupUser(t *testing.T, ws *webserver.WebServer, username, password string) string {
	t.Helper()
	rec := doJSON(t, ws, http.MethodPost, "/users/signup", "",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// seedAdmin writes an admin account straight into the store, the way the
// application bootstrap does.
func seedAdmin(t *testing.T, deps *testDeps, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	require.NoError(t, err)
	u := domain.User{Username: username, Password: string(hash), Admin: true}
	require.NoError(t, deps.st.Put(context.Background(), domain.TableUsers, username, u))
}

// seedProduct writes a product straight into the store.
func seedProduct(t *testing.T, deps *testDeps, p domain.Product) {
	t.Helper()
	require.NoError(t, deps.st.Put(context.Background(), domain.TableProducts, p.ID, p))
}

package webserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cargoshop/cargoshop/internal/domain"
)

// CurrentUserKey is the context key the authenticated user record is
// attached under.
const CurrentUserKey = "currentUser"

// UserClaims is the JWT payload: {username, admin} plus standard expiry.
type UserClaims struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the user, expiring after the
// configured lifetime (3600s by default).
func (ws *WebServer) IssueToken(username string, admin bool) (string, error) {
	cfg := ws.app.Config().Web
	claims := UserClaims{
		Username: username,
		Admin:    admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JwtExpiry) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

func (ws *WebServer) jwtMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(ws.app.Config().Web.Secret),
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(UserClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		},
	})
}

// attachUser resolves the token subject against the user collection. A
// valid token whose user record no longer exists is rejected the same way
// an invalid token is.
func (ws *WebServer) attachUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		claims, ok := token.Claims.(*UserClaims)
		if !ok || claims.Username == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		var user domain.User
		found, err := ws.app.Store().Get(c.Request().Context(), domain.TableUsers, claims.Username, &user)
		if err != nil {
			zap.S().Errorf("auth user lookup failed: %v", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		if !found {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		c.Set(CurrentUserKey, &user)
		return next(c)
	}
}

// VerifyUser checks the bearer token and loads the subject's user record
// into the request context.
func (ws *WebServer) VerifyUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return ws.jwtmw(ws.attachUser(next))
	}
}

// VerifyAdmin additionally requires the attached user's admin flag. Must be
// chained after VerifyUser.
func (ws *WebServer) VerifyAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || !user.Admin {
				return echo.NewHTTPError(http.StatusForbidden, "Apenas administradores podem realizar esta ação!")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user record attached by VerifyUser, or nil.
func CurrentUser(c echo.Context) *domain.User {
	if u, ok := c.Get(CurrentUserKey).(*domain.User); ok {
		return u
	}
	return nil
}

package webserver

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var wjson = jsoniter.ConfigCompatibleWithStandardLibrary

// JsoniterSerializer swaps echo's JSON codec for json-iterator.
type JsoniterSerializer struct{}

func (JsoniterSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := wjson.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (JsoniterSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := wjson.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// StrictJSONBinder rejects request bodies carrying unknown fields so
// malformed input fails at the boundary instead of being persisted as-is.
type StrictJSONBinder struct {
	fallback echo.DefaultBinder
}

func NewStrictJSONBinder() *StrictJSONBinder {
	return &StrictJSONBinder{}
}

func (b *StrictJSONBinder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)
	if req.ContentLength != 0 && strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		dec := wjson.NewDecoder(req.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return nil
	}
	return b.fallback.Bind(i, c)
}

// EntityValidator runs the `validate` struct tags on bound payloads.
type EntityValidator struct {
	validate *validator.Validate
}

func NewEntityValidator() *EntityValidator {
	return &EntityValidator{validate: validator.New()}
}

func (v *EntityValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Package client is a Go port of the Cargoshop SPA's data layer: a typed
// REST client, per-resource cached slices and a realtime listener that
// refreshes a slice whenever the server broadcasts a change.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

var cjson = jsoniter.ConfigCompatibleWithStandardLibrary

var formValidator = validator.New()

// ValidateForm runs a form's schema tags, like the SPA validated with yup
// before dispatching.
func ValidateForm(form interface{}) error {
	return formValidator.Struct(form)
}

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	Token    string
	Username string
	Admin    bool
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := cjson.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = cjson.NewDecoder(resp.Body).Decode(&e)
		msg := e.Error
		if msg == "" {
			msg = e.Message
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return cjson.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

type authResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	Admin    bool   `json:"admin"`
}

func (c *Client) Signup(ctx context.Context, username, password string) error {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/users/signup",
		map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return err
	}
	c.Token, c.Username, c.Admin = resp.Token, resp.Username, false
	return nil
}

func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/users/login",
		map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return err
	}
	c.Token, c.Username, c.Admin = resp.Token, resp.Username, resp.Admin
	return nil
}

// Logout clears local credentials; the server call is informational only.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/users/logout", nil, nil)
	c.Token, c.Username, c.Admin = "", "", false
	return err
}

type deleteResponse struct {
	ID string `json:"id"`
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var items []Product
	return items, c.do(ctx, http.MethodGet, "/products", nil, &items)
}

func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	var item Product
	return item, c.do(ctx, http.MethodGet, "/products/"+id, nil, &item)
}

func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (Product, error) {
	var item Product
	if err := ValidateForm(form); err != nil {
		return item, err
	}
	return item, c.do(ctx, http.MethodPost, "/products", form, &item)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, form ProductForm) (Product, error) {
	var item Product
	if err := ValidateForm(form); err != nil {
		return item, err
	}
	return item, c.do(ctx, http.MethodPut, "/products/"+id, form, &item)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, &deleteResponse{})
}

func (c *Client) ListPechinchas(ctx context.Context) ([]Pechincha, error) {
	var items []Pechincha
	return items, c.do(ctx, http.MethodGet, "/pechinchas", nil, &items)
}

func (c *Client) GetPechincha(ctx context.Context, id string) (Pechincha, error) {
	var item Pechincha
	return item, c.do(ctx, http.MethodGet, "/pechinchas/"+id, nil, &item)
}

func (c *Client) CreatePechincha(ctx context.Context, form PechinchaForm) (Pechincha, error) {
	var item Pechincha
	if err := ValidateForm(form); err != nil {
		return item, err
	}
	return item, c.do(ctx, http.MethodPost, "/pechinchas", form, &item)
}

func (c *Client) UpdatePechincha(ctx context.Context, id string, form PechinchaUpdateForm) (Pechincha, error) {
	var item Pechincha
	if err := ValidateForm(form); err != nil {
		return item, err
	}
	return item, c.do(ctx, http.MethodPut, "/pechinchas/"+id, form, &item)
}

// DeletePechincha cancels a negotiation.
func (c *Client) DeletePechincha(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pechinchas/"+id, nil, &deleteResponse{})
}

func (c *Client) ListPedidos(ctx context.Context) ([]Pedido, error) {
	var items []Pedido
	return items, c.do(ctx, http.MethodGet, "/pedidos", nil, &items)
}

func (c *Client) GetPedido(ctx context.Context, id string) (Pedido, error) {
	var item Pedido
	return item, c.do(ctx, http.MethodGet, "/pedidos/"+id, nil, &item)
}

func (c *Client) CreatePedido(ctx context.Context, form PedidoForm) (Pedido, error) {
	var item Pedido
	if err := ValidateForm(form); err != nil {
		return item, err
	}
	return item, c.do(ctx, http.MethodPost, "/pedidos", form, &item)
}

func (c *Client) UpdatePedido(ctx context.Context, id string, form PedidoForm) (Pedido, error) {
	var item Pedido
	if err := ValidateForm(form); err != nil {
		return item, err
	}
	form.IDPechincha = ""
	return item, c.do(ctx, http.MethodPut, "/pedidos/"+id, form, &item)
}

func (c *Client) DeletePedido(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/pedidos/"+id, nil, &deleteResponse{})
}

func (c *Client) ListReviews(ctx context.Context) ([]Review, error) {
	var items []Review
	return items, c.do(ctx, http.MethodGet, "/reviews", nil, &items)
}

func (c *Client) GetReview(ctx context.Context, id string) (Review, error) {
	var item Review
	return item, c.do(ctx, http.MethodGet, "/reviews/"+id, nil, &item)
}

func (c *Client) CreateReview(ctx context.Context, form ReviewForm) (Review, error) {
	var item Review
	if err := ValidateForm(form); err != nil {
		return item, err
	}
	return item, c.do(ctx, http.MethodPost, "/reviews", form, &item)
}

func (c *Client) UpdateReview(ctx context.Context, id string, form ReviewForm) (Review, error) {
	var item Review
	if err := ValidateForm(form); err != nil {
		return item, err
	}
	return item, c.do(ctx, http.MethodPut, "/reviews/"+id, form, &item)
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+id, nil, &deleteResponse{})
}

// UploadImage posts an image and returns its public /images path.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("imageFile", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/imageUpload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		_ = cjson.NewDecoder(resp.Body).Decode(&e)
		return "", &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	var out struct {
		Filename string `json:"filename"`
	}
	if err := cjson.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Filename, nil
}

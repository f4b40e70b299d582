package restapi

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// uploadImage stores a product image under the workdir and returns its
// public path. Filenames are regenerated so uploads never collide or
// traverse outside the images directory.
func (a *API) uploadImage(c echo.Context) error {
	file, err := c.FormFile("imageFile")
	if err != nil {
		return fail(c, http.StatusBadRequest, "No file uploaded")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return fail(c, http.StatusBadRequest, "Only image files are allowed")
	}

	dir := filepath.Join(a.deps.Config().System.Workdir, "public", "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		zap.S().Errorf("upload mkdir failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to upload image")
	}

	name := uuid.NewString() + ext
	src, err := file.Open()
	if err != nil {
		zap.S().Errorf("upload open failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to upload image")
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		zap.S().Errorf("upload create failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to upload image")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		zap.S().Errorf("upload copy failed: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to upload image")
	}

	return ok(c, echo.Map{"filename": "/images/" + name})
}

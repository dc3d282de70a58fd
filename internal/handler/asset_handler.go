package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/underwaterhousings/catalog_api/internal/route"
	"github.com/underwaterhousings/catalog_api/internal/utils"
)

// AssetHandler serves housing images from the assets directory, laid out
// exactly like their public paths.
type AssetHandler struct {
	root string
}

// NewAssetHandler creates a new AssetHandler rooted at dir.
func NewAssetHandler(dir string) *AssetHandler {
	return &AssetHandler{root: dir}
}

func (h *AssetHandler) file(publicPath string) (string, bool) {
	path := filepath.Join(h.root, filepath.FromSlash(strings.TrimPrefix(publicPath, "/")))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// isSlug rejects anything Slugify would change, which also rules out path traversal.
func isSlug(s string) bool {
	return s != "" && utils.Slugify(s) == s
}

// Image serves a housing's front or back picture, redirecting to the
// fallback image when the file is missing.
// GET /housings/:manufacturer/:housing/:image
func (h *AssetHandler) Image(c *gin.Context) {
	manufacturer, housing := c.Param("manufacturer"), c.Param("housing")
	kind, ok := route.ParseImageFile(c.Param("image"))
	if !ok || !isSlug(manufacturer) || !isSlug(housing) {
		utils.Error(c, http.StatusNotFound, "Image not found")
		return
	}

	if path, ok := h.file(route.HousingImage(manufacturer, housing, kind)); ok {
		c.File(path)
		return
	}
	c.Redirect(http.StatusFound, route.FallbackImage)
}

// Fallback serves the placeholder shown for housings without pictures.
// GET /housings/fallback.png
func (h *AssetHandler) Fallback(c *gin.Context) {
	path, ok := h.file(route.FallbackImage)
	if !ok {
		utils.Error(c, http.StatusNotFound, "Image not found")
		return
	}
	c.File(path)
}

// Package web serves the browser page and its static assets.
package web

import (
	"embed"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

//go:embed shell/index.html
var shell embed.FS

type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

// Index handles GET /. A page in the static dir wins over the built-in shell.
func (h *Handler) Index(c *gin.Context) {
	path := filepath.Join(h.dir, indexFile)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		c.File(path)
		return
	}

	page, err := shell.ReadFile("shell/" + indexFile)
	if err != nil {
		c.String(http.StatusNotFound, "page not available")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.Static("/static", filepath.Join(h.dir, "static"))
}

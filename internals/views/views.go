// Package views menyimpan template HTML yang di-embed ke binary.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var templatesFS embed.FS

// NewEngine membuat view engine Fiber dari template yang di-embed.
// Nama template = path tanpa ekstensi ("index", "layouts/main", dst).
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(templatesFS), ".html")
	engine.AddFunc("inc", func(i int) int { return i + 1 })
	return engine
}

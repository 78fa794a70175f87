package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine template engine ของหน้าเว็บทั้งหมด (login, dashboard, admin, bill, error)
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}

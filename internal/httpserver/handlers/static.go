package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
)

// Static serves the browser client; "/" maps to index.html.
func Static(d deps.Deps) http.Handler {
	return http.FileServer(http.Dir(d.StaticDir))
}

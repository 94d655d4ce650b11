package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
)

// GetBookmarks returns the stored document, seeding it on first access.
func GetBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Bookmarks.Load(r.Context())
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteJSON(w, http.StatusOK, doc)
	}
}

// PostBookmarks replaces the document with the request body, which must be
// a JSON object.
func PostBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r, d.MaxBodyBytes)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		doc, err := domain.ParseDocument(body)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		if _, err := d.Bookmarks.Save(r.Context(), doc); err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteSuccess(w, http.StatusOK, nil)
	}
}

// GetDashboard returns the render model: visible folders per region, cut to
// capacity, plus clocks and background.
func GetDashboard(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Bookmarks.Load(r.Context())
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteJSON(w, http.StatusOK, domain.BuildDashboard(doc, d.Capacities))
	}
}

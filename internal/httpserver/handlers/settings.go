package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/startpage/internal/logger"
	"github.com/MrSnakeDoc/startpage/internal/settings"
)

type settingsRequest struct {
	// A missing editors list is rejected rather than read as "delete every
	// category".
	Editors       *[]*settings.CategoryEditor `json:"editors"`
	Clocks        []domain.ClockEntry         `json:"clocks"`
	BackgroundURL string                      `json:"backgroundUrl"`
}

// GetSettings seeds a settings session from the stored document.
func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Bookmarks.Load(r.Context())
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		session, err := settings.OpenSession(doc, d.Capacities)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteJSON(w, http.StatusOK, session.View())
	}
}

// PostSettings reconciles submitted editor state into a new document.
// Categories the form never showed (no region) are kept.
func PostSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r, d.MaxBodyBytes)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		var req settingsRequest
		if err := json.Unmarshal(body, &req); err != nil {
			d.Response.HandleError(w, r, errs.NewMalformedInputError(fmt.Sprintf("settings: %v", err)))
			return
		}
		if req.Editors == nil {
			d.Response.HandleError(w, r, errs.NewMalformedInputError(`settings: "editors" must be an array`))
			return
		}

		current, err := d.Bookmarks.Load(r.Context())
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		session, err := settings.OpenSession(current, d.Capacities)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		if err := session.ReplaceEditors(*req.Editors); err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		session.SetClocks(req.Clocks)
		session.SetBackground(req.BackgroundURL)

		for _, ed := range session.Editors() {
			if ed.Renamed() {
				d.Logger.Info("category renamed",
					logger.String("from", ed.OriginalName),
					logger.String("to", ed.Name))
			}
		}

		saved, err := d.Bookmarks.Save(r.Context(), session.Build())
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteSuccess(w, http.StatusOK, saved)
	}
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
)

type todosResponse struct {
	Todos domain.TodoDocument `json:"todos"`
}

type dayResponse struct {
	Date string                              `json:"date"`
	Rows [domain.MaxTodoRows]domain.TodoRow `json:"rows"`
}

type dayRequest struct {
	Rows *[]domain.TodoRow `json:"rows"`
}

func GetTodos(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		todos, err := d.Todos.Load(r.Context())
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteJSON(w, http.StatusOK, todosResponse{Todos: todos})
	}
}

// PostTodos replaces the whole to-do document. Empty days are pruned.
func PostTodos(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r, d.MaxBodyBytes)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		todos, err := domain.ParseTodos(body)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		if err := d.Todos.Save(r.Context(), todos); err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteSuccess(w, http.StatusOK, nil)
	}
}

// GetTodoDay returns exactly MaxTodoRows rows for the {date} URL parameter.
func GetTodoDay(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := domain.ParseDate(chi.URLParam(r, "date"))
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		rows, err := d.Todos.OpenDay(r.Context(), date)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteJSON(w, http.StatusOK, dayResponse{Date: date, Rows: rows})
	}
}

// PutTodoDay stores the rows of one day; all-empty rows delete the day.
func PutTodoDay(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := domain.ParseDate(chi.URLParam(r, "date"))
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		body, err := readBody(w, r, d.MaxBodyBytes)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		var req dayRequest
		if err := json.Unmarshal(body, &req); err != nil {
			d.Response.HandleError(w, r, errs.NewMalformedInputError(fmt.Sprintf("todo day: %v", err)))
			return
		}
		if req.Rows == nil {
			d.Response.HandleError(w, r, errs.NewMalformedInputError(`todo day: "rows" must be an array`))
			return
		}

		if err := d.Todos.SaveDay(r.Context(), date, *req.Rows); err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		rows, err := d.Todos.OpenDay(r.Context(), date)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteSuccess(w, http.StatusOK, dayResponse{Date: date, Rows: rows})
	}
}

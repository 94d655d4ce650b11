package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/handlers"
)

func init() { Register(registerAPI) }

// registerAPI wires the persistence endpoints. Writes go through the write
// rate limit when one is configured.
func registerAPI(r chi.Router, d deps.Deps) {
	write := r
	if d.WriteLimit != nil {
		write = r.With(d.WriteLimit)
	}

	r.Get("/api/bookmarks", handlers.GetBookmarks(d))
	write.Post("/api/bookmarks", handlers.PostBookmarks(d))

	r.Get("/api/notes", handlers.GetNotes(d))
	write.Post("/api/notes", handlers.PostNotes(d))

	r.Get("/api/todos", handlers.GetTodos(d))
	write.Post("/api/todos", handlers.PostTodos(d))
	r.Get("/api/todos/{date}", handlers.GetTodoDay(d))
	write.Put("/api/todos/{date}", handlers.PutTodoDay(d))

	r.Get("/api/settings", handlers.GetSettings(d))
	write.Post("/api/settings", handlers.PostSettings(d))
	write.Post("/api/settings/categories", handlers.PostCategory(d))
	write.Delete("/api/settings/categories/{name}", handlers.DeleteCategory(d))
	write.Post("/api/settings/categories/{name}/entries", handlers.PostEntry(d))
	write.Delete("/api/settings/categories/{name}/entries/{index}", handlers.DeleteEntry(d))
	write.Post("/api/settings/categories/{name}/entries/{index}/move", handlers.MoveEntry(d))

	r.Get("/api/dashboard", handlers.GetDashboard(d))
}

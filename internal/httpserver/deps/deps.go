package deps

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/response"
	"github.com/MrSnakeDoc/startpage/internal/logger"
	"github.com/MrSnakeDoc/startpage/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	Response  *response.Handler
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	AllowedHosts []string // Host headers allowed to access the server
	AllowedCIDRS []string // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)

	RequestTimeout time.Duration // per-request deadline
	MaxBodyBytes   int64         // request body limit for writes

	Backend    store.Backend      // raw document storage, pinged by readyz
	Bookmarks  *store.ConfigStore // bookmarks/settings document
	Notes      *store.NotesStore
	Todos      *store.TodoStore
	Capacities domain.Capacities // per-region bookmark limits

	StaticDir  string                          // client files served at /
	WriteLimit func(http.Handler) http.Handler // rate limit applied to POST/PUT routes; nil = none
}

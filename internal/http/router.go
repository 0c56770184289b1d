package http

import (
	"net/http"
	"time"

	"github.com/radhikag0/VisionBoard26/internal/docstore"
	"github.com/radhikag0/VisionBoard26/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type API struct {
	Store      docstore.Store
	UploadsDir string
	Origins    []string
}

// noUpdate satisfies the update type parameter for resources without a PUT
// route; it is never decoded.
type noUpdate struct{}

func (noUpdate) Patch() map[string]any { return nil }

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(loggingMiddleware)
	r.Use(a.corsMiddleware)

	r.Get("/", a.handleRoot)
	r.Get("/health", a.handleHealth)

	goals := newResource[models.Goal, models.GoalCreate, models.GoalUpdate](a.Store, docstore.Goals, "Goal")
	todos := newResource[models.Todo, models.TodoCreate, models.TodoUpdate](a.Store, docstore.Todos, "Todo")
	moodboard := newResource[models.MoodBoardImage, models.MoodBoardImageCreate, models.MoodBoardImageUpdate](a.Store, docstore.MoodBoard, "Image")
	gallery := newResource[models.GalleryItem, models.GalleryItemCreate, noUpdate](a.Store, docstore.Gallery, "Gallery item")

	r.Route("/api", func(r chi.Router) {
		r.Route("/goals", goals.routes)
		r.Route("/todos", todos.routes)
		r.Route("/moodboard", moodboard.routes)
		// Gallery items are immutable once created; no PUT route.
		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", gallery.list)
			r.Post("/", gallery.create)
			r.Delete("/{id}", gallery.delete)
		})
		r.Post("/upload", a.handleUpload)
	})

	// Uploaded assets are served back read-only.
	files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(a.UploadsDir)))
	r.Get("/uploads/*", files.ServeHTTP)

	return r
}

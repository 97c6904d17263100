package httpserver

import (
	"net/http"
	"time"

	"pet-tracker-go/internal/config"
	"pet-tracker-go/internal/transport/httpserver/handler"
	corsmw "pet-tracker-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/pets", handlers.ListPets)
		r.Post("/pets", handlers.CreatePet)
		r.Get("/pets/{petId}", handlers.GetPet)
		r.Patch("/pets/{petId}", handlers.UpdatePet)
		r.Delete("/pets/{petId}", handlers.DeletePet)

		r.Get("/trackers", handlers.ListTrackers)
		r.Post("/trackers", handlers.CreateTracker)
		r.Get("/trackers/{trackerId}", handlers.GetTracker)
		r.Patch("/trackers/{trackerId}", handlers.UpdateTracker)
		r.Delete("/trackers/{trackerId}", handlers.DeleteTracker)

		r.Get("/entries", handlers.ListEntries)
		r.Post("/entries", handlers.CreateEntry)
		r.Get("/entries/{entryId}", handlers.GetEntry)
		r.Patch("/entries/{entryId}", handlers.UpdateEntry)
		r.Delete("/entries/{entryId}", handlers.DeleteEntry)

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(30, time.Minute))
			r.Post("/upload", handlers.UploadFile)
		})
	})

	// Uploaded files are public by path.
	uploadsFS := http.StripPrefix(cfg.Upload.PublicPath+"/", http.FileServer(http.Dir(cfg.Upload.Dir)))
	r.Get(cfg.Upload.PublicPath+"/*", uploadsFS.ServeHTTP)

	return r
}

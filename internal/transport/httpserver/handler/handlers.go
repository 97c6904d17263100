package handler

import (
	"net/http"

	entriesdomain "pet-tracker-go/internal/domain/entries"
	petsdomain "pet-tracker-go/internal/domain/pets"
	trackersdomain "pet-tracker-go/internal/domain/trackers"
	uploadsdomain "pet-tracker-go/internal/domain/uploads"
	"pet-tracker-go/pkg/logger"
)

type Handlers struct {
	Pets     *petsdomain.Service
	Trackers *trackersdomain.Service
	Entries  *entriesdomain.Service
	Uploads  *uploadsdomain.Service
	log      logger.Logger
}

func New(pets *petsdomain.Service, trackers *trackersdomain.Service, entries *entriesdomain.Service, uploads *uploadsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Pets:     pets,
		Trackers: trackers,
		Entries:  entries,
		Uploads:  uploads,
		log:      log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package handler

import (
	"errors"
	"net/http"

	petsdomain "pet-tracker-go/internal/domain/pets"
	trackersdomain "pet-tracker-go/internal/domain/trackers"
	"github.com/go-chi/chi/v5"
)

type formOptionRequest struct {
	FieldName string `json:"fieldName"`
	FieldType string `json:"fieldType"`
}

type createTrackerRequest struct {
	Name    string              `json:"name"`
	PetID   string              `json:"petId"`
	Options []formOptionRequest `json:"options"`
}

type updateTrackerRequest struct {
	Name    *string              `json:"name"`
	Options *[]formOptionRequest `json:"options"`
}

type formOptionResponse struct {
	ID        uint   `json:"id"`
	TrackerID uint   `json:"trackerId"`
	FieldName string `json:"fieldName"`
	FieldType string `json:"fieldType"`
}

type trackerResponse struct {
	ID      uint                 `json:"id"`
	PetID   string               `json:"petId"`
	Name    string               `json:"name"`
	Options []formOptionResponse `json:"options"`
}

type trackerDetailResponse struct {
	trackerResponse
	Pet petResponse `json:"pet"`
}

func toTrackerResponse(tracker trackersdomain.Tracker) trackerResponse {
	options := make([]formOptionResponse, 0, len(tracker.Options))
	for _, opt := range tracker.Options {
		options = append(options, formOptionResponse{
			ID:        opt.ID,
			TrackerID: opt.TrackerID,
			FieldName: opt.FieldName,
			FieldType: string(opt.FieldType),
		})
	}
	return trackerResponse{
		ID:      tracker.ID,
		PetID:   tracker.PetID,
		Name:    tracker.Name,
		Options: options,
	}
}

func toOptionInputs(requests []formOptionRequest) []trackersdomain.FormOptionInput {
	inputs := make([]trackersdomain.FormOptionInput, 0, len(requests))
	for _, opt := range requests {
		inputs = append(inputs, trackersdomain.FormOptionInput{
			FieldName: opt.FieldName,
			FieldType: opt.FieldType,
		})
	}
	return inputs
}

func (h *Handlers) ListTrackers(w http.ResponseWriter, r *http.Request) {
	petID := r.URL.Query().Get("petId")

	trackers, err := h.Trackers.ListTrackers(r.Context(), petID)
	if err != nil {
		h.log.InternalError("trackers.list: list trackers failed", err, "pet_id", petID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch trackers")
		return
	}

	response := make([]trackerResponse, 0, len(trackers))
	for _, tracker := range trackers {
		response = append(response, toTrackerResponse(tracker))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateTracker(w http.ResponseWriter, r *http.Request) {
	var req createTrackerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	tracker, err := h.Trackers.CreateTracker(r.Context(), trackersdomain.CreateTrackerInput{
		Name:    req.Name,
		PetID:   req.PetID,
		Options: toOptionInputs(req.Options),
	})
	if err != nil {
		if errors.Is(err, trackersdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("trackers.create: create tracker failed", err, "pet_id", req.PetID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to create tracker")
		return
	}

	writeJSON(w, http.StatusCreated, toTrackerResponse(*tracker))
}

func (h *Handlers) GetTracker(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(chi.URLParam(r, "trackerId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Tracker not found")
		return
	}

	tracker, err := h.Trackers.GetTracker(r.Context(), id)
	if err != nil {
		if errors.Is(err, trackersdomain.ErrTrackerNotFound) {
			h.log.BusinessError("trackers.get: tracker not found", err, "tracker_id", id)
			writeError(w, http.StatusNotFound, "not_found", "Tracker not found")
			return
		}
		h.log.InternalError("trackers.get: get tracker failed", err, "tracker_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch tracker")
		return
	}

	pet, err := h.Pets.GetPet(r.Context(), tracker.PetID)
	if err != nil && !errors.Is(err, petsdomain.ErrPetNotFound) {
		h.log.InternalError("trackers.get: get pet failed", err, "tracker_id", id, "pet_id", tracker.PetID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch tracker")
		return
	}

	response := trackerDetailResponse{trackerResponse: toTrackerResponse(*tracker)}
	if pet != nil {
		response.Pet = toPetResponse(*pet)
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpdateTracker(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(chi.URLParam(r, "trackerId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Tracker not found")
		return
	}

	var req updateTrackerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := trackersdomain.UpdateTrackerInput{
		ID:   id,
		Name: req.Name,
	}
	if req.Options != nil {
		input.Options = toOptionInputs(*req.Options)
	}

	tracker, err := h.Trackers.UpdateTracker(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, trackersdomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, trackersdomain.ErrTrackerNotFound):
			h.log.BusinessError("trackers.update: tracker not found", err, "tracker_id", id)
			writeError(w, http.StatusNotFound, "not_found", "Tracker not found")
		default:
			h.log.InternalError("trackers.update: update tracker failed", err, "tracker_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to update tracker")
		}
		return
	}

	writeJSON(w, http.StatusOK, toTrackerResponse(*tracker))
}

func (h *Handlers) DeleteTracker(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(chi.URLParam(r, "trackerId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Tracker not found")
		return
	}

	if err := h.Trackers.DeleteTracker(r.Context(), id); err != nil {
		if errors.Is(err, trackersdomain.ErrTrackerNotFound) {
			h.log.BusinessError("trackers.delete: tracker not found", err, "tracker_id", id)
			writeError(w, http.StatusNotFound, "not_found", "Tracker not found")
			return
		}
		h.log.InternalError("trackers.delete: delete tracker failed", err, "tracker_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete tracker")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Tracker deleted successfully"})
}

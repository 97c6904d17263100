package handler

import (
	"errors"
	"net/http"
	"time"

	entriesdomain "pet-tracker-go/internal/domain/entries"
	trackersdomain "pet-tracker-go/internal/domain/trackers"
	"github.com/go-chi/chi/v5"
)

type entryDataRequest struct {
	FieldName  string `json:"fieldName"`
	FieldType  string `json:"fieldType"`
	FieldValue string `json:"fieldValue"`
}

type createEntryRequest struct {
	TrackerID uint               `json:"trackerId"`
	PetID     string             `json:"petId"`
	Data      []entryDataRequest `json:"data"`
}

type updateEntryRequest struct {
	Data *[]entryDataRequest `json:"data"`
}

type entryDataResponse struct {
	ID         uint   `json:"id"`
	EntryID    uint   `json:"entryId"`
	FieldName  string `json:"fieldName"`
	FieldType  string `json:"fieldType"`
	FieldValue string `json:"fieldValue"`
}

type entryImageResponse struct {
	ID      uint   `json:"id"`
	EntryID uint   `json:"entryId"`
	URL     string `json:"url"`
}

type entryResponse struct {
	ID        uint                 `json:"id"`
	TrackerID uint                 `json:"trackerId"`
	PetID     string               `json:"petId"`
	CreatedAt time.Time            `json:"createdAt"`
	Data      []entryDataResponse  `json:"data"`
	Images    []entryImageResponse `json:"images"`
}

type entryDetailResponse struct {
	entryResponse
	Tracker *trackerResponse `json:"tracker"`
}

func toEntryResponse(entry entriesdomain.Entry) entryResponse {
	data := make([]entryDataResponse, 0, len(entry.Data))
	for _, d := range entry.Data {
		data = append(data, entryDataResponse{
			ID:         d.ID,
			EntryID:    d.EntryID,
			FieldName:  d.FieldName,
			FieldType:  d.FieldType,
			FieldValue: d.FieldValue,
		})
	}
	images := make([]entryImageResponse, 0, len(entry.Images))
	for _, img := range entry.Images {
		images = append(images, entryImageResponse{
			ID:      img.ID,
			EntryID: img.EntryID,
			URL:     img.URL,
		})
	}
	return entryResponse{
		ID:        entry.ID,
		TrackerID: entry.TrackerID,
		PetID:     entry.PetID,
		CreatedAt: entry.CreatedAt,
		Data:      data,
		Images:    images,
	}
}

func toDataInputs(requests []entryDataRequest) []entriesdomain.EntryDataInput {
	inputs := make([]entriesdomain.EntryDataInput, 0, len(requests))
	for _, d := range requests {
		inputs = append(inputs, entriesdomain.EntryDataInput{
			FieldName:  d.FieldName,
			FieldType:  d.FieldType,
			FieldValue: d.FieldValue,
		})
	}
	return inputs
}

func (h *Handlers) ListEntries(w http.ResponseWriter, r *http.Request) {
	trackerID, err := parseOptionalUintParam(r.URL.Query().Get("trackerId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid trackerId")
		return
	}

	entries, err := h.Entries.ListEntries(r.Context(), trackerID)
	if err != nil {
		h.log.InternalError("entries.list: list entries failed", err, "tracker_id", trackerID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch entries")
		return
	}

	response := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toEntryResponse(entry))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	entry, err := h.Entries.CreateEntry(r.Context(), entriesdomain.CreateEntryInput{
		TrackerID: req.TrackerID,
		PetID:     req.PetID,
		Data:      toDataInputs(req.Data),
	})
	if err != nil {
		if errors.Is(err, entriesdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("entries.create: create entry failed", err, "tracker_id", req.TrackerID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to create entry")
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(*entry))
}

func (h *Handlers) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(chi.URLParam(r, "entryId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Entry not found")
		return
	}

	entry, err := h.Entries.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, entriesdomain.ErrEntryNotFound) {
			h.log.BusinessError("entries.get: entry not found", err, "entry_id", id)
			writeError(w, http.StatusNotFound, "not_found", "Entry not found")
			return
		}
		h.log.InternalError("entries.get: get entry failed", err, "entry_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch entry")
		return
	}

	// The tracker (with options) rides along so clients can render
	// field metadata next to the stored values.
	response := entryDetailResponse{entryResponse: toEntryResponse(*entry)}
	tracker, err := h.Trackers.GetTracker(r.Context(), entry.TrackerID)
	if err != nil && !errors.Is(err, trackersdomain.ErrTrackerNotFound) {
		h.log.InternalError("entries.get: get tracker failed", err, "entry_id", id, "tracker_id", entry.TrackerID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch entry")
		return
	}
	if tracker != nil {
		t := toTrackerResponse(*tracker)
		response.Tracker = &t
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(chi.URLParam(r, "entryId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Entry not found")
		return
	}

	var req updateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := entriesdomain.UpdateEntryInput{ID: id}
	if req.Data != nil {
		data := toDataInputs(*req.Data)
		input.Data = &data
	}

	entry, err := h.Entries.UpdateEntry(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, entriesdomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, entriesdomain.ErrEntryNotFound):
			h.log.BusinessError("entries.update: entry not found", err, "entry_id", id)
			writeError(w, http.StatusNotFound, "not_found", "Entry not found")
		default:
			h.log.InternalError("entries.update: update entry failed", err, "entry_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to update entry")
		}
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

func (h *Handlers) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(chi.URLParam(r, "entryId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "Entry not found")
		return
	}

	if err := h.Entries.DeleteEntry(r.Context(), id); err != nil {
		if errors.Is(err, entriesdomain.ErrEntryNotFound) {
			h.log.BusinessError("entries.delete: entry not found", err, "entry_id", id)
			writeError(w, http.StatusNotFound, "not_found", "Entry not found")
			return
		}
		h.log.InternalError("entries.delete: delete entry failed", err, "entry_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete entry")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Entry deleted successfully"})
}

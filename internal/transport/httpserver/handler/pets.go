package handler

import (
	"errors"
	"net/http"
	"time"

	petsdomain "pet-tracker-go/internal/domain/pets"
	"github.com/go-chi/chi/v5"
)

type createPetRequest struct {
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Age     *int   `json:"age"`
}

type updatePetRequest struct {
	Name    *string `json:"name"`
	Gender  *string `json:"gender"`
	Species *string `json:"species"`
	Breed   *string `json:"breed"`
	Age     *int    `json:"age"`
}

type petResponse struct {
	PetID        string    `json:"petId"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed"`
	Age          int       `json:"age"`
	LastModified time.Time `json:"lastModified"`
}

type petDetailResponse struct {
	petResponse
	Trackers []trackerResponse `json:"trackers"`
}

func toPetResponse(pet petsdomain.Pet) petResponse {
	return petResponse{
		PetID:        pet.PetID,
		Name:         pet.Name,
		Gender:       pet.Gender,
		Species:      pet.Species,
		Breed:        pet.Breed,
		Age:          pet.Age,
		LastModified: pet.LastModified,
	}
}

func (h *Handlers) ListPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.Pets.ListPets(r.Context())
	if err != nil {
		h.log.InternalError("pets.list: list pets failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch pets")
		return
	}

	response := make([]petResponse, 0, len(pets))
	for _, pet := range pets {
		response = append(response, toPetResponse(pet))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreatePet(w http.ResponseWriter, r *http.Request) {
	var req createPetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Age == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "age is required")
		return
	}

	pet, err := h.Pets.CreatePet(r.Context(), petsdomain.CreatePetInput{
		Name:    req.Name,
		Gender:  req.Gender,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     *req.Age,
	})
	if err != nil {
		if errors.Is(err, petsdomain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("pets.create: create pet failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to create pet")
		return
	}

	writeJSON(w, http.StatusCreated, toPetResponse(*pet))
}

func (h *Handlers) GetPet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petId")

	pet, err := h.Pets.GetPet(r.Context(), petID)
	if err != nil {
		if errors.Is(err, petsdomain.ErrPetNotFound) {
			h.log.BusinessError("pets.get: pet not found", err, "pet_id", petID)
			writeError(w, http.StatusNotFound, "not_found", "Pet not found")
			return
		}
		h.log.InternalError("pets.get: get pet failed", err, "pet_id", petID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch pet")
		return
	}

	trackers, err := h.Trackers.ListTrackers(r.Context(), petID)
	if err != nil {
		h.log.InternalError("pets.get: list trackers failed", err, "pet_id", petID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch pet")
		return
	}

	response := petDetailResponse{
		petResponse: toPetResponse(*pet),
		Trackers:    make([]trackerResponse, 0, len(trackers)),
	}
	for _, tracker := range trackers {
		response.Trackers = append(response.Trackers, toTrackerResponse(tracker))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpdatePet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petId")

	var req updatePetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	pet, err := h.Pets.UpdatePet(r.Context(), petsdomain.UpdatePetInput{
		PetID:   petID,
		Name:    req.Name,
		Gender:  req.Gender,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
	})
	if err != nil {
		switch {
		case errors.Is(err, petsdomain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, petsdomain.ErrPetNotFound):
			h.log.BusinessError("pets.update: pet not found", err, "pet_id", petID)
			writeError(w, http.StatusNotFound, "not_found", "Pet not found")
		default:
			h.log.InternalError("pets.update: update pet failed", err, "pet_id", petID)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to update pet")
		}
		return
	}

	writeJSON(w, http.StatusOK, toPetResponse(*pet))
}

func (h *Handlers) DeletePet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petId")

	if err := h.Pets.DeletePet(r.Context(), petID); err != nil {
		if errors.Is(err, petsdomain.ErrPetNotFound) {
			h.log.BusinessError("pets.delete: pet not found", err, "pet_id", petID)
			writeError(w, http.StatusNotFound, "not_found", "Pet not found")
			return
		}
		h.log.InternalError("pets.delete: delete pet failed", err, "pet_id", petID)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete pet")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Pet deleted successfully"})
}

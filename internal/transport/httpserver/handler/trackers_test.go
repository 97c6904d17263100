package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackerPayload struct {
	ID      uint   `json:"id"`
	PetID   string `json:"petId"`
	Name    string `json:"name"`
	Options []struct {
		ID        uint   `json:"id"`
		TrackerID uint   `json:"trackerId"`
		FieldName string `json:"fieldName"`
		FieldType string `json:"fieldType"`
	} `json:"options"`
}

func medicationOptions() []map[string]string {
	return []map[string]string{
		{"fieldName": "Medication", "fieldType": "Text"},
		{"fieldName": "Dosage", "fieldType": "Decimal"},
		{"fieldName": "Date Given", "fieldType": "Date"},
	}
}

func TestCreateAndGetTracker(t *testing.T) {
	env := newTestEnv(t)
	petID := env.createPet("Rex")
	trackerID := env.createTracker(petID, "Medication Log", medicationOptions())

	status, raw := env.request(http.MethodGet, uintPath("/api/trackers/", trackerID), nil)
	require.Equal(t, http.StatusOK, status, "body: %s", raw)

	var detail struct {
		trackerPayload
		Pet struct {
			PetID string `json:"petId"`
			Name  string `json:"name"`
		} `json:"pet"`
	}
	decode(t, raw, &detail)

	assert.Equal(t, trackerID, detail.ID)
	assert.Equal(t, "Medication Log", detail.Name)
	require.Len(t, detail.Options, 3)
	assert.Equal(t, "Dosage", detail.Options[1].FieldName)
	assert.Equal(t, "Decimal", detail.Options[1].FieldType)
	assert.Equal(t, petID, detail.Pet.PetID)
	assert.Equal(t, "Rex", detail.Pet.Name)
}

func TestCreateTrackerRejectsBadFieldType(t *testing.T) {
	env := newTestEnv(t)
	petID := env.createPet("Rex")

	status, raw := env.request(http.MethodPost, "/api/trackers", map[string]interface{}{
		"name":  "Broken",
		"petId": petID,
		"options": []map[string]string{
			{"fieldName": "Flag", "fieldType": "Boolean"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, status, "body: %s", raw)
}

func TestCreateTrackerRejectsNoOptions(t *testing.T) {
	env := newTestEnv(t)
	petID := env.createPet("Rex")

	status, _ := env.request(http.MethodPost, "/api/trackers", map[string]interface{}{
		"name":    "Empty",
		"petId":   petID,
		"options": []map[string]string{},
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUpdateTrackerReplacesOptionRows(t *testing.T) {
	env := newTestEnv(t)
	petID := env.createPet("Rex")
	trackerID := env.createTracker(petID, "Medication Log", medicationOptions())

	status, raw := env.request(http.MethodGet, uintPath("/api/trackers/", trackerID), nil)
	require.Equal(t, http.StatusOK, status)
	var before trackerPayload
	decode(t, raw, &before)
	require.Len(t, before.Options, 3)

	oldIDs := make(map[uint]bool)
	for _, opt := range before.Options {
		oldIDs[opt.ID] = true
	}

	status, raw = env.request(http.MethodPatch, uintPath("/api/trackers/", trackerID), map[string]interface{}{
		"options": append(medicationOptions(), map[string]string{
			"fieldName": "Notes", "fieldType": "Text",
		}),
	})
	require.Equal(t, http.StatusOK, status, "body: %s", raw)

	var after trackerPayload
	decode(t, raw, &after)
	require.Len(t, after.Options, 4)
	for _, opt := range after.Options {
		assert.False(t, oldIDs[opt.ID], "option row %d survived the replacement", opt.ID)
		assert.Equal(t, trackerID, opt.TrackerID)
	}
}

func TestUpdateTrackerNamePreservesOptions(t *testing.T) {
	env := newTestEnv(t)
	petID := env.createPet("Rex")
	trackerID := env.createTracker(petID, "Medication Log", medicationOptions())

	status, raw := env.request(http.MethodPatch, uintPath("/api/trackers/", trackerID), map[string]interface{}{
		"name": "Updated Log",
	})
	require.Equal(t, http.StatusOK, status, "body: %s", raw)

	var updated trackerPayload
	decode(t, raw, &updated)
	assert.Equal(t, "Updated Log", updated.Name)
	assert.Len(t, updated.Options, 3)
}

func TestListTrackersFiltersByPet(t *testing.T) {
	env := newTestEnv(t)
	firstPet := env.createPet("Rex")
	secondPet := env.createPet("Mittens")
	env.createTracker(firstPet, "Medication Log", medicationOptions())
	env.createTracker(secondPet, "Weight Log", []map[string]string{
		{"fieldName": "Weight", "fieldType": "Decimal"},
	})

	status, raw := env.request(http.MethodGet, "/api/trackers?petId="+firstPet, nil)
	require.Equal(t, http.StatusOK, status)
	var filtered []trackerPayload
	decode(t, raw, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, firstPet, filtered[0].PetID)

	status, raw = env.request(http.MethodGet, "/api/trackers", nil)
	require.Equal(t, http.StatusOK, status)
	var all []trackerPayload
	decode(t, raw, &all)
	assert.Len(t, all, 2)
}

func TestDeleteTrackerLeavesSiblings(t *testing.T) {
	env := newTestEnv(t)
	petID := env.createPet("Rex")
	doomed := env.createTracker(petID, "Medication Log", medicationOptions())
	kept := env.createTracker(petID, "Weight Log", []map[string]string{
		{"fieldName": "Weight", "fieldType": "Decimal"},
	})
	doomedEntry := env.createEntry(petID, doomed, []map[string]string{
		{"fieldName": "Medication", "fieldType": "Text", "fieldValue": "Carprofen"},
	})
	keptEntry := env.createEntry(petID, kept, []map[string]string{
		{"fieldName": "Weight", "fieldType": "Decimal", "fieldValue": "12.5"},
	})

	status, _ := env.request(http.MethodDelete, uintPath("/api/trackers/", doomed), nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = env.request(http.MethodGet, uintPath("/api/trackers/", doomed), nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = env.request(http.MethodGet, uintPath("/api/entries/", doomedEntry), nil)
	assert.Equal(t, http.StatusNotFound, status, "entries must not survive their tracker")

	status, _ = env.request(http.MethodGet, uintPath("/api/trackers/", kept), nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.request(http.MethodGet, uintPath("/api/entries/", keptEntry), nil)
	assert.Equal(t, http.StatusOK, status, "sibling tracker data must be untouched")
}

func TestGetTrackerUnknownID(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(http.MethodGet, "/api/trackers/999", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.request(http.MethodGet, "/api/trackers/not-a-number", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

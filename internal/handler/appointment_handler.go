package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"care-info-api/internal/model"
)

type appointmentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Doctor   string `json:"doctor"`
	Hospital string `json:"hospital"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (req appointmentRequest) toModel(id string) *model.Appointment {
	return &model.Appointment{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Doctor:   req.Doctor,
		Hospital: req.Hospital,
		Date:     req.Date,
		Time:     req.Time,
	}
}

// BookAppointment inserts without checking the slot; see Availability.
func (h *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	a := req.toModel(uuid.New().String())
	if err := h.store.CreateAppointment(r.Context(), a); err != nil {
		h.fail(w, r, err, "Failed to book appointment")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Appointment booked successfully",
		"id":      a.ID,
	})
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	apts, err := h.store.ListAppointments(r.Context())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, apts)
}

// Availability lists the slots already taken for ?doctor=. It is a hint for
// the booking form; nothing prevents a later booking of the same slot.
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	doctor := r.URL.Query().Get("doctor")
	if doctor == "" {
		h.fail(w, r, &ValidationError{Msg: "Doctor is required"}, "")
		return
	}
	slots, err := h.store.BookedSlots(r.Context(), doctor)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := h.store.UpdateAppointment(r.Context(), req.toModel(mux.Vars(r)["id"])); err != nil {
		h.fail(w, r, err, "Failed to update appointment")
		return
	}
	writeMessage(w, http.StatusOK, "Appointment updated successfully")
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAppointment(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "Failed to delete appointment")
		return
	}
	writeMessage(w, http.StatusOK, "Appointment deleted successfully")
}

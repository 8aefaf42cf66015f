package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"care-info-api/internal/model"
)

type doctorRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	Education string `json:"education"`
}

func (req doctorRequest) toModel(id string) *model.Doctor {
	return &model.Doctor{
		ID:        id,
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		Email:     req.Email,
		Location:  req.Location,
		Education: req.Education,
	}
}

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListDoctors(r.Context())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// CreateDoctor stores whatever fields were sent; the add-doctor form is
// the only place they are required.
func (h *Handler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req doctorRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	d := req.toModel(uuid.New().String())
	if err := h.store.CreateDoctor(r.Context(), d); err != nil {
		h.fail(w, r, err, "Failed to add doctor")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Doctor added successfully",
		"id":      d.ID,
	})
}

func (h *Handler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req doctorRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := h.store.UpdateDoctor(r.Context(), req.toModel(mux.Vars(r)["id"])); err != nil {
		h.fail(w, r, err, "Failed to update doctor")
		return
	}
	writeMessage(w, http.StatusOK, "Doctor updated successfully")
}

func (h *Handler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteDoctor(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "Failed to delete doctor")
		return
	}
	writeMessage(w, http.StatusOK, "Doctor deleted successfully")
}

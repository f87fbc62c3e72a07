package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/user"
	"github.com/shiftease/shiftease-web/internal/pkg/validator"
	"github.com/shiftease/shiftease-web/internal/service/roster"
)

type ProfileHandler struct {
	roster   *roster.Service
	renderer *Renderer
	log      *slog.Logger
}

func NewProfileHandler(rosterSvc *roster.Service, renderer *Renderer, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{roster: rosterSvc, renderer: renderer, log: log}
}

type profilePage struct {
	basePage
	Profile user.Employee
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.roster.Profile(r.Context())
	if err != nil {
		h.log.Warn("profile fetch failed", slog.Any("err", err))
		redirectWithError(w, r, "/", "Please log in")
		return
	}

	h.renderer.Render(w, "profile", profilePage{
		basePage: newBasePage(r, "My Profile"),
		Profile:  profile,
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	profile, err := h.roster.Profile(r.Context())
	if err != nil {
		redirectWithError(w, r, "/", "Please log in")
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/profile", "Invalid form submission")
		return
	}

	// Only the contact fields are editable; everything else carries over
	// from the fetched record so the full-record PUT does not blank it.
	req := user.UpdateEmployeeRequest{
		FirstName:        r.PostFormValue("first_name"),
		LastName:         r.PostFormValue("last_name"),
		Email:            r.PostFormValue("email"),
		Phone:            r.PostFormValue("phone"),
		JobTitle:         profile.JobTitle,
		Department:       profile.Department,
		HourlyPayRate:    profile.HourlyPayRate.String(),
		EmploymentStatus: string(profile.EmploymentStatus),
		Role:             profile.Role,
	}

	if err := h.roster.UpdateProfile(r.Context(), profile, req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			redirectWithError(w, r, "/profile", errs.Error())
			return
		}
		h.log.Error("update profile", slog.Any("err", err))
		redirectWithError(w, r, "/profile", "Failed to update profile.")
		return
	}

	redirectWithSuccess(w, r, "/profile", "Profile updated successfully!")
}

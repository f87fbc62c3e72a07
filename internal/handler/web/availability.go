package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftease/shiftease-web/internal/domain/user"
	"github.com/shiftease/shiftease-web/internal/service/availability"
	"github.com/shiftease/shiftease-web/internal/service/roster"
	"github.com/shiftease/shiftease-web/internal/session"
)

type AvailabilityHandler struct {
	avail    *availability.Service
	roster   *roster.Service
	renderer *Renderer
	log      *slog.Logger
}

func NewAvailabilityHandler(availSvc *availability.Service, rosterSvc *roster.Service, renderer *Renderer, log *slog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{avail: availSvc, roster: rosterSvc, renderer: renderer, log: log}
}

type availabilityPage struct {
	basePage
	Own        bool
	Editable   bool
	Employee   user.Employee
	Entries    []user.AvailabilityEntry
	Days       []string
	EditEntry  *user.AvailabilityEntry
	FormAction string
	BasePath   string
}

// Own renders the signed-in user's availability, always read-only:
// employees ask a manager to change their windows.
func (h *AvailabilityHandler) Own(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
		return
	}

	page := availabilityPage{
		basePage: newBasePage(r, "My Availability"),
		Own:      true,
	}

	entries, err := h.avail.List(r.Context(), sess.UserID)
	if err != nil {
		h.log.Warn("fetch availability", slog.Any("err", err))
		page.basePage.Error = "Failed to load availability."
	} else {
		page.Entries = entries
	}

	h.renderer.Render(w, "availability", page)
}

// Manage renders another employee's availability with edit rights.
func (h *AvailabilityHandler) Manage(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
		return
	}
	id := chi.URLParam(r, "id")

	employees, err := h.roster.List(r.Context(), "")
	if err != nil {
		redirectWithError(w, r, "/admin", "Failed to load employees. Please try again later.")
		return
	}
	emp, ok := roster.Find(employees, id)
	if !ok {
		redirectWithError(w, r, "/admin", "Employee not found.")
		return
	}

	basePath := "/admin/employees/" + id + "/availability"
	page := availabilityPage{
		basePage:   newBasePage(r, "Availability"),
		Employee:   emp,
		Days:       user.DaysOfWeek,
		Editable:   availability.Editable(sess, id),
		FormAction: basePath,
		BasePath:   basePath,
	}

	entries, err := h.avail.List(r.Context(), id)
	if err != nil {
		h.log.Warn("fetch availability", slog.Any("err", err))
		page.basePage.Error = "Failed to load availability."
	} else {
		page.Entries = entries
	}

	if editID := r.URL.Query().Get("edit"); editID != "" && page.Editable {
		for i := range page.Entries {
			if page.Entries[i].ID == editID {
				page.EditEntry = &page.Entries[i]
				page.FormAction = basePath + "/" + editID
				break
			}
		}
	}

	h.renderer.Render(w, "availability", page)
}

func (h *AvailabilityHandler) requireEditable(w http.ResponseWriter, r *http.Request, targetID string) bool {
	sess, err := session.FromContext(r.Context())
	if err != nil || !availability.Editable(sess, targetID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func availabilityRequestFromForm(r *http.Request) user.AvailabilityRequest {
	return user.AvailabilityRequest{
		Day:       r.PostFormValue("day"),
		StartTime: r.PostFormValue("start_time"),
		EndTime:   r.PostFormValue("end_time"),
	}
}

func (h *AvailabilityHandler) Add(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.requireEditable(w, r, id) {
		return
	}
	basePath := "/admin/employees/" + id + "/availability"

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, basePath, "Invalid form submission")
		return
	}

	if _, err := h.avail.Add(r.Context(), id, availabilityRequestFromForm(r)); err != nil {
		h.log.Warn("add availability", slog.Any("err", err))
		redirectWithError(w, r, basePath, "Failed to add availability.")
		return
	}

	redirectWithSuccess(w, r, basePath, "Availability added successfully!")
}

func (h *AvailabilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")
	if !h.requireEditable(w, r, id) {
		return
	}
	basePath := "/admin/employees/" + id + "/availability"

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, basePath, "Invalid form submission")
		return
	}

	if _, err := h.avail.Update(r.Context(), id, entryID, availabilityRequestFromForm(r)); err != nil {
		h.log.Warn("update availability", slog.Any("err", err))
		redirectWithError(w, r, basePath, "Failed to update availability.")
		return
	}

	redirectWithSuccess(w, r, basePath, "Availability updated successfully!")
}

func (h *AvailabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entryID := chi.URLParam(r, "entryID")
	if !h.requireEditable(w, r, id) {
		return
	}
	basePath := "/admin/employees/" + id + "/availability"

	if _, err := h.avail.Delete(r.Context(), id, entryID); err != nil {
		h.log.Warn("delete availability", slog.Any("err", err))
		redirectWithError(w, r, basePath, "Failed to delete availability.")
		return
	}

	redirectWithSuccess(w, r, basePath, "Availability deleted.")
}

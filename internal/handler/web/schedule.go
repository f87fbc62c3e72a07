package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shiftease/shiftease-web/internal/domain/shift"
	"github.com/shiftease/shiftease-web/internal/service/schedule"
)

type ScheduleHandler struct {
	schedule *schedule.Service
	renderer *Renderer
	log      *slog.Logger
}

func NewScheduleHandler(scheduleSvc *schedule.Service, renderer *Renderer, log *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{schedule: scheduleSvc, renderer: renderer, log: log}
}

type weekPage struct {
	basePage
	Week         schedule.WeekView
	AccessDenied bool
}

func (h *ScheduleHandler) Week(w http.ResponseWriter, r *http.Request) {
	page := weekPage{basePage: newBasePage(r, "Weekly Schedule")}

	view, err := h.schedule.Week(r.Context(), r.URL.Query().Get("week"))
	if err != nil {
		// Any fetch failure renders the access-denied message in place
		// of the grid, matching the screen's single failure mode.
		if !errors.Is(err, shift.ErrAccessDenied) {
			h.log.Error("fetch week", slog.Any("err", err))
		}
		page.AccessDenied = true
		h.renderer.Render(w, "schedule", page)
		return
	}

	page.Week = view
	h.renderer.Render(w, "schedule", page)
}

func (h *ScheduleHandler) ExportWeek(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	name, err := h.schedule.ExportWeek(r.Context(), &buf, r.URL.Query().Get("week"))
	if err != nil {
		h.log.Error("export week", slog.Any("err", err))
		redirectWithError(w, r, "/admin/schedule", "Failed to export the schedule.")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

type mySchedulePage struct {
	basePage
	View schedule.MonthView
}

func (h *ScheduleHandler) MySchedule(w http.ResponseWriter, r *http.Request) {
	page := mySchedulePage{basePage: newBasePage(r, "My Schedule")}

	view, err := h.schedule.MySchedule(r.Context(), r.URL.Query().Get("month"), r.URL.Query().Get("selected"))
	if err != nil {
		h.log.Error("fetch my shifts", slog.Any("err", err))
		page.basePage.Error = "Unable to load your schedule."
		h.renderer.Render(w, "my_schedule", page)
		return
	}

	page.View = view
	h.renderer.Render(w, "my_schedule", page)
}

package web

import (
	"log/slog"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/clock"
	"github.com/shiftease/shiftease-web/internal/domain/user"
	"github.com/shiftease/shiftease-web/internal/service/roster"
)

type DashboardHandler struct {
	roster   *roster.Service
	clocks   clock.Gateway
	renderer *Renderer
	log      *slog.Logger
}

func NewDashboardHandler(rosterSvc *roster.Service, clocks clock.Gateway, renderer *Renderer, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{roster: rosterSvc, clocks: clocks, renderer: renderer, log: log}
}

type dashboardPage struct {
	basePage
	Profile       user.Employee
	Records       []clock.Record
	StatusMessage string
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	profile, err := h.roster.Profile(r.Context())
	if err != nil {
		// Without a profile the dashboard is meaningless; treat it as a
		// dead session.
		h.log.Warn("profile fetch failed", slog.Any("err", err))
		redirectWithError(w, r, "/", "Please log in")
		return
	}

	page := dashboardPage{
		basePage: newBasePage(r, "Dashboard"),
		Profile:  profile,
	}

	records, err := h.clocks.Records(r.Context())
	if err != nil {
		h.log.Warn("clock records fetch failed", slog.Any("err", err))
		page.StatusMessage = "Could not load clock records."
	} else {
		page.Records = records
		if len(records) > 0 {
			page.StatusMessage = "Last action: " + string(records[0].Status)
		}
	}

	h.renderer.Render(w, "dashboard", page)
}

func (h *DashboardHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	if err := h.clocks.ClockIn(r.Context()); err != nil {
		redirectWithError(w, r, "/employee", "Clock in failed. You may already be clocked in.")
		return
	}
	redirectWithSuccess(w, r, "/employee", "Clocked in successfully!")
}

func (h *DashboardHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	if err := h.clocks.ClockOut(r.Context()); err != nil {
		redirectWithError(w, r, "/employee", "Clock out failed. You may not be clocked in.")
		return
	}
	redirectWithSuccess(w, r, "/employee", "Clocked out successfully!")
}

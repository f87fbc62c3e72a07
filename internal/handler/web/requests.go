package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftease/shiftease-web/internal/domain/swap"
	"github.com/shiftease/shiftease-web/internal/domain/timeoff"
	"github.com/shiftease/shiftease-web/internal/pkg/validator"
	"github.com/shiftease/shiftease-web/internal/service/request"
	"github.com/shiftease/shiftease-web/internal/session"
)

type RequestHandler struct {
	requests *request.Service
	renderer *Renderer
	log      *slog.Logger
}

func NewRequestHandler(requestSvc *request.Service, renderer *Renderer, log *slog.Logger) *RequestHandler {
	return &RequestHandler{requests: requestSvc, renderer: renderer, log: log}
}

type timeOffPage struct {
	basePage
	Requests []timeoff.Request
}

func (h *RequestHandler) TimeOff(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
		return
	}

	page := timeOffPage{basePage: newBasePage(r, "Time Off")}

	requests, err := h.requests.TimeOffList(r.Context(), sess)
	if err != nil {
		h.log.Error("list time off", slog.Any("err", err))
		page.basePage.Error = "Failed to load time off requests."
	} else {
		page.Requests = requests
	}

	h.renderer.Render(w, "timeoff", page)
}

func (h *RequestHandler) SubmitTimeOff(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/timeoff", "Invalid form submission")
		return
	}

	req := timeoff.CreateRequest{
		StartDate: r.PostFormValue("start_date"),
		EndDate:   r.PostFormValue("end_date"),
		Reason:    r.PostFormValue("reason"),
	}

	if err := h.requests.SubmitTimeOff(r.Context(), req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			redirectWithError(w, r, "/timeoff", errs.Error())
			return
		}
		h.log.Error("submit time off", slog.Any("err", err))
		redirectWithError(w, r, "/timeoff", "Failed to submit request.")
		return
	}

	redirectWithSuccess(w, r, "/timeoff", "Time off request submitted!")
}

func (h *RequestHandler) DecideTimeOff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/timeoff", "Invalid form submission")
		return
	}

	status := timeoff.Status(r.PostFormValue("status"))
	if err := h.requests.DecideTimeOff(r.Context(), id, status); err != nil {
		h.log.Error("decide time off", slog.String("id", id), slog.Any("err", err))
		redirectWithError(w, r, "/timeoff", "Failed to update request.")
		return
	}

	redirectWithSuccess(w, r, "/timeoff", "Request "+string(status)+".")
}

type swapsPage struct {
	basePage
	Requests []swap.Request
	Form     request.SwapForm
}

func (h *RequestHandler) Swaps(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
		return
	}

	page := swapsPage{basePage: newBasePage(r, "Swap Requests")}

	requests, err := h.requests.SwapList(r.Context(), sess)
	if err != nil {
		h.log.Error("list swaps", slog.Any("err", err))
		page.basePage.Error = "Failed to load swap requests."
	} else {
		page.Requests = requests
	}

	if !page.CanApprove {
		form, err := h.requests.SwapFormData(r.Context(), sess)
		if err != nil {
			h.log.Warn("load swap form data", slog.Any("err", err))
		} else {
			page.Form = form
		}
	}

	h.renderer.Render(w, "swaps", page)
}

func (h *RequestHandler) SubmitSwap(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		http.Redirect(w, r, "/?error=Please+log+in", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/swap-requests", "Invalid form submission")
		return
	}

	req := swap.CreateRequest{
		RequestedByShift:  r.PostFormValue("requested_by_employee_shiftID"),
		RequestedFor:      r.PostFormValue("requested_for"),
		RequestedForShift: r.PostFormValue("requested_for_employee_shiftID"),
		Reason:            r.PostFormValue("reason"),
	}

	if err := h.requests.SubmitSwap(r.Context(), sess, req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			redirectWithError(w, r, "/swap-requests", errs.Error())
			return
		}
		h.log.Error("submit swap", slog.Any("err", err))
		redirectWithError(w, r, "/swap-requests", "Failed to submit swap request.")
		return
	}

	redirectWithSuccess(w, r, "/swap-requests", "Swap request submitted!")
}

func (h *RequestHandler) DecideSwap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	decision := chi.URLParam(r, "decision")

	if err := h.requests.DecideSwap(r.Context(), id, decision); err != nil {
		h.log.Error("decide swap", slog.String("id", id), slog.Any("err", err))
		redirectWithError(w, r, "/swap-requests", "Failed to update swap request.")
		return
	}

	redirectWithSuccess(w, r, "/swap-requests", "Swap request updated.")
}

// EmployeeShiftOptions serves the option list for the swap form's
// dependent shift select.
func (h *RequestHandler) EmployeeShiftOptions(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee")
	if employeeID == "" {
		h.renderer.RenderShiftOptions(w, nil)
		return
	}

	shifts, err := h.requests.EmployeeShifts(r.Context(), employeeID)
	if err != nil {
		h.log.Warn("load employee shifts", slog.Any("err", err))
		h.renderer.RenderShiftOptions(w, nil)
		return
	}

	h.renderer.RenderShiftOptions(w, shifts)
}

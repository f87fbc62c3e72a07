package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftease/shiftease-web/internal/domain/shift"
	"github.com/shiftease/shiftease-web/internal/domain/user"
	"github.com/shiftease/shiftease-web/internal/pkg/validator"
	"github.com/shiftease/shiftease-web/internal/service/availability"
	"github.com/shiftease/shiftease-web/internal/service/roster"
)

type AdminHandler struct {
	roster   *roster.Service
	avail    *availability.Service
	shifts   shift.Gateway
	renderer *Renderer
	log      *slog.Logger
}

func NewAdminHandler(rosterSvc *roster.Service, availSvc *availability.Service, shifts shift.Gateway, renderer *Renderer, log *slog.Logger) *AdminHandler {
	return &AdminHandler{roster: rosterSvc, avail: availSvc, shifts: shifts, renderer: renderer, log: log}
}

type availabilityPreview struct {
	Employee user.Employee
	Entries  []user.AvailabilityEntry
}

type adminPage struct {
	basePage
	Query               string
	Employees           []user.Employee
	EditID              string
	Availability        *availabilityPreview
	TimeOptions         []string
	AssignableEmployees []user.Employee
	ShiftCreated        bool
}

// Admin renders the employee table with search, the inline edit row,
// the inline availability preview and the shift creation form.
func (h *AdminHandler) Admin(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	employees, err := h.roster.List(r.Context(), query)
	if err != nil {
		h.log.Error("list employees", slog.Any("err", err))
		page := adminPage{basePage: newBasePage(r, "Employee Management"), Query: query}
		page.basePage.Error = "Failed to load employees. Please try again later."
		h.renderer.Render(w, "admin", page)
		return
	}

	page := adminPage{
		basePage:     newBasePage(r, "Employee Management"),
		Query:        query,
		Employees:    employees,
		EditID:       r.URL.Query().Get("edit"),
		ShiftCreated: r.URL.Query().Get("created") == "1",
	}

	if id := r.URL.Query().Get("availability"); id != "" {
		if emp, ok := roster.Find(employees, id); ok {
			entries, err := h.avail.List(r.Context(), id)
			if err != nil {
				h.log.Warn("fetch availability", slog.Any("err", err))
				page.basePage.Error = "Failed to fetch availability."
			} else {
				page.Availability = &availabilityPreview{Employee: emp, Entries: entries}
			}
		}
	}

	if page.CanManageShifts {
		page.TimeOptions = shift.TimeOptions()
		assignable, err := h.shifts.AssignableEmployees(r.Context())
		if err != nil {
			h.log.Warn("fetch assignable employees", slog.Any("err", err))
		} else {
			page.AssignableEmployees = assignable
		}
	}

	h.renderer.Render(w, "admin", page)
}

func (h *AdminHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/admin", "Invalid form submission")
		return
	}

	req := user.UpdateEmployeeRequest{
		FirstName:        r.PostFormValue("first_name"),
		LastName:         r.PostFormValue("last_name"),
		Email:            r.PostFormValue("email"),
		Phone:            r.PostFormValue("phone"),
		JobTitle:         r.PostFormValue("job_title"),
		Department:       r.PostFormValue("department"),
		HourlyPayRate:    r.PostFormValue("hourly_pay_rate"),
		EmploymentStatus: r.PostFormValue("employment_status"),
		Role:             r.PostFormValue("role"),
	}

	if err := h.roster.Update(r.Context(), id, req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			redirectWithError(w, r, "/admin", errs.Error())
			return
		}
		h.log.Error("update employee", slog.String("id", id), slog.Any("err", err))
		redirectWithError(w, r, "/admin", "Failed to update employee.")
		return
	}

	redirectWithSuccess(w, r, "/admin", "Employee updated successfully!")
}

type deletePage struct {
	basePage
	Employee user.Employee
}

// DeleteEmployee asks for confirmation on the first submit and deletes
// on the confirmed one.
func (h *AdminHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/admin", "Invalid form submission")
		return
	}

	if r.PostFormValue("confirm") != "1" {
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
		h.renderer.Render(w, "delete_employee", deletePage{
			basePage: newBasePage(r, "Delete Employee"),
			Employee: emp,
		})
		return
	}

	if err := h.roster.Delete(r.Context(), id); err != nil {
		h.log.Error("delete employee", slog.String("id", id), slog.Any("err", err))
		redirectWithError(w, r, "/admin", "Failed to delete employee.")
		return
	}

	redirectWithSuccess(w, r, "/admin", "Employee deleted.")
}

func (h *AdminHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/admin", "Invalid form submission")
		return
	}

	req := shift.CreateShiftRequest{
		Date:       r.PostFormValue("date"),
		StartTime:  r.PostFormValue("start_time"),
		EndTime:    r.PostFormValue("end_time"),
		EmployeeID: r.PostFormValue("employee_id"),
	}
	if err := req.Validate(); err != nil {
		redirectWithError(w, r, "/admin", err.Error())
		return
	}

	if err := h.shifts.Create(r.Context(), req); err != nil {
		h.log.Error("create shift", slog.Any("err", err))
		redirectWithError(w, r, "/admin", "Failed to create shift.")
		return
	}

	http.Redirect(w, r, "/admin?created=1", http.StatusFound)
}

type addPage struct {
	basePage
	Form user.CreateEmployeeRequest
}

func (h *AdminHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "add", addPage{
		basePage: newBasePage(r, "Add Employee"),
		Form:     user.CreateEmployeeRequest{EmploymentStatus: string(user.FullTime), Role: "user"},
	})
}

func (h *AdminHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/add", "Invalid form submission")
		return
	}

	req := user.CreateEmployeeRequest{
		FirstName:        r.PostFormValue("first_name"),
		LastName:         r.PostFormValue("last_name"),
		Email:            r.PostFormValue("email"),
		Password:         r.PostFormValue("password"),
		Phone:            r.PostFormValue("phone"),
		JobTitle:         r.PostFormValue("job_title"),
		Department:       r.PostFormValue("department"),
		HourlyPayRate:    r.PostFormValue("hourly_pay_rate"),
		EmploymentStatus: r.PostFormValue("employment_status"),
		Role:             r.PostFormValue("role"),
	}

	if err := h.roster.Create(r.Context(), req); err != nil {
		page := addPage{basePage: newBasePage(r, "Add Employee"), Form: req}
		var errs validator.ValidationErrors
		switch {
		case errors.As(err, &errs):
			page.basePage.Error = errs.Error()
		case errors.Is(err, user.ErrEmailTaken):
			page.basePage.Error = "That email address is already registered."
		default:
			h.log.Error("create employee", slog.Any("err", err))
			page.basePage.Error = "Failed to add employee."
		}
		h.renderer.Render(w, "add", page)
		return
	}

	redirectWithSuccess(w, r, "/add", "Employee added successfully!")
}

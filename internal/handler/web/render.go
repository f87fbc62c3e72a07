package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/clock"
	"github.com/shiftease/shiftease-web/internal/policy"
	"github.com/shiftease/shiftease-web/internal/service/schedule"
	"github.com/shiftease/shiftease-web/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{
	"login",
	"dashboard",
	"admin",
	"delete_employee",
	"schedule",
	"my_schedule",
	"availability",
	"add",
	"timeoff",
	"swaps",
	"profile",
}

var templateFuncs = template.FuncMap{
	"formatTotalHours": clock.FormatTotalHours,
	"localDate":        schedule.LocalDate,
}

// Renderer holds one template set per page, each sharing the layout.
type Renderer struct {
	pages    map[string]*template.Template
	fragment *template.Template
	log      *slog.Logger
}

func NewRenderer(log *slog.Logger) *Renderer {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(template.New("layout.html").Funcs(templateFuncs).ParseFS(
			templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		))
	}
	return &Renderer{
		pages:    pages,
		fragment: template.Must(template.New("swap_shifts.html").Funcs(templateFuncs).ParseFS(templatesFS, "templates/swap_shifts.html")),
		log:      log,
	}
}

func (rn *Renderer) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := rn.pages[name]
	if !ok {
		rn.log.Error("unknown page template", slog.String("page", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		rn.log.Error("render page", slog.String("page", name), slog.Any("err", err))
	}
}

// RenderShiftOptions writes the shift <option> fragment for the swap
// form's dependent select.
func (rn *Renderer) RenderShiftOptions(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rn.fragment.Execute(w, data); err != nil {
		rn.log.Error("render fragment", slog.Any("err", err))
	}
}

// basePage is the data every layout render needs: identity-driven nav
// plus the banner strings carried across redirects.
type basePage struct {
	Title    string
	Error    string
	Success  string
	LoggedIn bool

	CanManageEmployees bool
	CanManageShifts    bool
	CanViewWeek        bool
	CanApprove         bool
}

func newBasePage(r *http.Request, title string) basePage {
	page := basePage{
		Title:   title,
		Error:   r.URL.Query().Get("error"),
		Success: r.URL.Query().Get("success"),
	}
	if sess, err := session.FromContext(r.Context()); err == nil {
		page.LoggedIn = true
		page.CanManageEmployees = sess.Can(policy.CapEmployeeManage)
		page.CanManageShifts = sess.Can(policy.CapShiftManage)
		page.CanViewWeek = sess.Can(policy.CapWeekScheduleView)
		page.CanApprove = sess.Can(policy.CapRequestApprove)
	}
	return page
}

// redirectWithError sends the browser back to a page with a banner.
func redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?error="+template.URLQueryEscaper(msg), http.StatusFound)
}

func redirectWithSuccess(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?success="+template.URLQueryEscaper(msg), http.StatusFound)
}

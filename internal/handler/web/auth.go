package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shiftease/shiftease-web/internal/domain/auth"
	"github.com/shiftease/shiftease-web/internal/pkg/validator"
	"github.com/shiftease/shiftease-web/internal/policy"
	"github.com/shiftease/shiftease-web/internal/session"
)

type AuthHandler struct {
	auth     auth.Gateway
	sessions *session.Manager
	renderer *Renderer
	log      *slog.Logger
}

func NewAuthHandler(authGW auth.Gateway, sessions *session.Manager, renderer *Renderer, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: authGW, sessions: sessions, renderer: renderer, log: log}
}

type loginPage struct {
	basePage
	Email         string
	EmailError    string
	PasswordError string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "login", loginPage{basePage: newBasePage(r, "Login")})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/", "Invalid form submission")
		return
	}

	req := auth.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	page := loginPage{basePage: newBasePage(r, "Login"), Email: req.Email}
	page.basePage.Error = ""

	if err := req.Validate(); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			fields := errs.ToMap()
			page.EmailError = fields["email"]
			page.PasswordError = fields["password"]
		}
		h.renderer.Render(w, "login", page)
		return
	}

	result, err := h.auth.Login(r.Context(), req)
	if err != nil {
		var fieldErr *auth.FieldError
		switch {
		case errors.As(err, &fieldErr):
			// The backend names the failing input so the message lands
			// under the right field, not in a page banner.
			if fieldErr.Field == "email" {
				page.EmailError = fieldErr.Message
			} else {
				page.PasswordError = fieldErr.Message
			}
		case errors.Is(err, auth.ErrInvalidCredentials):
			page.basePage.Error = "Invalid email or password"
		default:
			h.log.Error("login", slog.Any("err", err))
			page.basePage.Error = "Login is temporarily unavailable. Please try again."
		}
		h.renderer.Render(w, "login", page)
		return
	}

	err = h.sessions.Issue(w, session.Session{
		Token:  result.Token,
		Role:   policy.ParseRole(result.Role),
		UserID: result.UserID,
	})
	if err != nil {
		h.log.Error("issue session", slog.Any("err", err))
		page.basePage.Error = "Could not establish a session"
		h.renderer.Render(w, "login", page)
		return
	}

	http.Redirect(w, r, "/employee", http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

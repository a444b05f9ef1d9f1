package web

import (
	"net/http"

	"stockdesk/internal/backend"
	"stockdesk/internal/session"
)

type authPage struct {
	PageData
	Error    string
	Username string
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &authPage{PageData: PageData{Title: "Sign in"}})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		s.Templates.Render(w, "login.html", &authPage{
			PageData: PageData{Title: "Sign in"},
			Error:    "Enter a username and password.",
			Username: username,
		})
		return
	}

	resp, err := s.Backend.Login(r.Context(), backend.Credentials{Username: username, Password: password})
	if err != nil {
		msg := "Login failed. Try again."
		if backend.IsUnauthorized(err) {
			msg = "Invalid username or password."
		}
		s.Log.Warn("login failed", "username", username, "error", err)
		s.Templates.Render(w, "login.html", &authPage{
			PageData: PageData{Title: "Sign in"},
			Error:    msg,
			Username: username,
		})
		return
	}

	sess := session.Session{Token: resp.Token, Username: resp.Username, Role: resp.Role}
	if err := s.Sessions.Issue(w, sess); err != nil {
		s.Log.Error("failed to issue session", "error", err)
		s.Templates.Render(w, "login.html", &authPage{
			PageData: PageData{Title: "Sign in"},
			Error:    "Login failed. Try again.",
			Username: username,
		})
		return
	}

	s.Log.Info("user logged in", "username", resp.Username, "role", resp.Role)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPage handles GET /register.
func (s *Server) RegisterPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "register.html", &authPage{PageData: PageData{Title: "Register"}})
}

// RegisterSubmit handles POST /register.
func (s *Server) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		s.Templates.Render(w, "register.html", &authPage{
			PageData: PageData{Title: "Register"},
			Error:    "Enter a username and password.",
			Username: username,
		})
		return
	}

	resp, err := s.Backend.Register(r.Context(), backend.Credentials{Username: username, Password: password})
	if err != nil {
		s.Log.Warn("registration failed", "username", username, "error", err)
		s.Templates.Render(w, "register.html", &authPage{
			PageData: PageData{Title: "Register"},
			Error:    "Registration failed. Try again.",
			Username: username,
		})
		return
	}

	sess := session.Session{Token: resp.Token, Username: resp.Username, Role: resp.Role}
	if err := s.Sessions.Issue(w, sess); err != nil {
		s.Log.Error("failed to issue session", "error", err)
		s.Templates.Render(w, "register.html", &authPage{
			PageData: PageData{Title: "Register"},
			Error:    "Registration failed. Try again.",
			Username: username,
		})
		return
	}

	s.Log.Info("user registered", "username", resp.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.Sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

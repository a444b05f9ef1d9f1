package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const flashCookie = "stockdesk_flash"

// Flash is a one-shot notification rendered on the next page load. It
// replaces blocking dialogs: a failed action leaves a banner, never a modal.
type Flash struct {
	Kind    string `json:"kind"` // "error" or "success"
	Message string `json:"message"`
}

// SetFlash queues a flash message for the next rendered page.
func SetFlash(w http.ResponseWriter, kind, message string) {
	buf, err := json.Marshal(Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.URLEncoding.EncodeToString(buf),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears it.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	buf, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(buf, &f); err != nil {
		return nil
	}
	return &f
}

// failureMessage turns a backend error into the user-facing banner text.
// Backend errors read "failed to <verb> <resource>"; the banner keeps that
// exact contract, capitalized. The error kind is deliberately not exposed.
func failureMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return "Request failed"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// errorFlash builds an inline error flash for a page rendered in the same
// request as the failure.
func errorFlash(err error) *Flash {
	return &Flash{Kind: "error", Message: failureMessage(err)}
}

// setErrorFlash queues an error flash for the page the user is redirected to.
func setErrorFlash(w http.ResponseWriter, err error) {
	SetFlash(w, "error", failureMessage(err))
}

package auth

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash is a transient user-facing message surfaced on the next rendered
// page, the equivalent of a one-shot message queue per browser.
type Flash struct {
	Level   string
	Message string
}

// Flash levels
const (
	FlashError = "error"
	FlashInfo  = "info"
)

// SetFlash queues a message for the next rendered page via a one-shot cookie.
// The value is base64-encoded because cookie values cannot carry spaces.
func SetFlash(w http.ResponseWriter, flash Flash) {
	value := base64.URLEncoding.EncodeToString([]byte(flash.Level + "|" + flash.Message))
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash consumes the pending flash message, if any, expiring its cookie.
func PopFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return Flash{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Flash{}, false
	}
	level, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return Flash{}, false
	}
	return Flash{Level: level, Message: message}, true
}

package handlers

import (
	"net/http"
)

// AuthCookieName — cookie с подписанным сессионным токеном
const AuthCookieName = "auth"

// setAuthCookie выставляет cookie на весь срок жизни токена
func (h *Handlers) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Cfg.AuthTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookie затирает cookie, браузер удалит её при следующем запросе
func (h *Handlers) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAuthCookie возвращает пустую строку, если cookie нет
func ReadAuthCookie(r *http.Request) string {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

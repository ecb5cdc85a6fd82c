package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"radiopanel/internal/constants"
)

// Flash messages ride in a short-lived HMAC-signed cookie so they survive the
// post-redirect-get round trip without server-side session state.
type Flash struct {
	Category string `json:"category"` // success or error
	Message  string `json:"message"`
}

func (h *Handler) setFlash(w http.ResponseWriter, category, message string) {
	payload, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)

	http.SetCookie(w, &http.Cookie{
		Name:     constants.FlashCookieName,
		Value:    encoded + "." + h.sign(encoded),
		Path:     "/",
		MaxAge:   constants.FlashCookieAge,
		HttpOnly: true,
	})
}

// popFlash reads and clears the pending flash. A missing, malformed, or
// tampered cookie yields nil.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(constants.FlashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	encoded, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(h.sign(encoded))) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var fl Flash
	if err := json.Unmarshal(payload, &fl); err != nil {
		return nil
	}
	return &fl
}

func (h *Handler) sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(h.Config.SecretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

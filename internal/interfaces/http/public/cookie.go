package public

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	draftCookieName   = "nova_draft"
	draftCookieTTL    = 2 * time.Hour
	draftCookieMaxAge = int(draftCookieTTL / time.Second)
)

// draftID resolves the caller's draft id from the signed cookie, minting a
// fresh id and cookie when none is valid. The cookie only identifies the
// draft; the form contents stay server-side.
func (h *Handler) draftID(w http.ResponseWriter, r *http.Request) (string, error) {
	if len(h.draftCookieSecret) == 0 {
		return "", fmt.Errorf("draft cookie secret not configured")
	}
	if cookie, err := r.Cookie(draftCookieName); err == nil {
		if id, issuedAt, ok := h.parseDraftCookie(cookie.Value); ok && time.Since(issuedAt) < draftCookieTTL {
			return id, nil
		}
	}
	id := primitive.NewObjectID().Hex()
	h.issueDraftCookie(w, id)
	return id, nil
}

func (h *Handler) issueDraftCookie(w http.ResponseWriter, id string) {
	value := h.signDraftCookie(id, time.Now().UTC())
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.draftCookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   draftCookieMaxAge,
	})
}

func (h *Handler) clearDraftCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.draftCookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (h *Handler) signDraftCookie(id string, issuedAt time.Time) string {
	payload := fmt.Sprintf("v=%s&ts=%d", id, issuedAt.Unix())
	mac := hmac.New(sha256.New, h.draftCookieSecret)
	mac.Write([]byte(payload))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return payload + "&sig=" + sig
}

func (h *Handler) parseDraftCookie(raw string) (string, time.Time, bool) {
	parts := strings.Split(raw, "&")
	if len(parts) < 3 {
		return "", time.Time{}, false
	}
	values := make(map[string]string, len(parts))
	for _, part := range parts {
		keyValue := strings.SplitN(part, "=", 2)
		if len(keyValue) != 2 {
			continue
		}
		values[keyValue[0]] = keyValue[1]
	}
	id := values["v"]
	timestamp := values["ts"]
	sig := values["sig"]
	if id == "" || timestamp == "" || sig == "" {
		return "", time.Time{}, false
	}

	payload := fmt.Sprintf("v=%s&ts=%s", id, timestamp)
	mac := hmac.New(sha256.New, h.draftCookieSecret)
	mac.Write([]byte(payload))
	expectedSig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expectedSig), []byte(sig)) {
		return "", time.Time{}, false
	}

	tsInt, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return "", time.Time{}, false
	}
	return id, time.Unix(tsInt, 0), true
}

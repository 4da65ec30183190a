package utils

import (
	"net/http"

	"vitrin/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

// GetGuestIDFromRequest reads the guest cart id header sent by the
// storefront for unauthenticated sessions.
func GetGuestIDFromRequest(r *http.Request) string {
	return r.Header.Get("X-Guest-ID")
}

package auth

// Session cookie name and the key the authenticated user id is stored
// under inside the session payload.
const (
	SessionName    = "cloudnest_session"
	SessionUserKey = "user_id"
)

package auth

// Session is the resolved identity of an inbound request. It is only ever
// constructed by the session middleware from server-validated state.
type Session struct {
	userID string
}

// NoSession marks an unauthenticated request.
var NoSession = Session{}

func NewSession(userID string) Session {
	return Session{userID: userID}
}

func (s Session) GetUserID() string {
	return s.userID
}

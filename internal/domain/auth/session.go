package auth

// Session is either an authenticated account or a guest. Persistence is only
// reachable through UserID's ok result, so guest ledgers can never hit the
// store by accident.
type Session struct {
	userID   string
	username string
	guest    bool
}

func NewAuthenticatedSession(userID, username string) Session {
	return Session{userID: userID, username: username}
}

func NewGuestSession() Session {
	return Session{username: "Guest", guest: true}
}

func (s Session) UserID() (string, bool) {
	if s.guest || s.userID == "" {
		return "", false
	}
	return s.userID, true
}

func (s Session) Username() string {
	return s.username
}

func (s Session) IsGuest() bool {
	return s.guest
}

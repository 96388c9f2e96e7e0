package state

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

// Session is the authentication region of the store. Only the raw token is
// durable; User and IsAuthenticated exist for the process lifetime only.
type Session struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

func sessionPending(s Session) Session {
	s.IsLoading = true
	s.Err = ""
	return s
}

func sessionFulfilled(s Session, res models.LoginResponse) Session {
	user := res.User
	s.User = &user
	s.Token = res.Token
	s.IsAuthenticated = true
	s.IsLoading = false
	s.Err = ""
	return s
}

func sessionRejected(s Session, msg string) Session {
	s.IsLoading = false
	s.Err = msg
	s.IsAuthenticated = false
	return s
}

func sessionCleared(s Session) Session {
	s.User = nil
	s.Token = ""
	s.IsAuthenticated = false
	s.Err = ""
	return s
}

// sessionWithToken restores only the raw token value; the authenticated
// state is not reconstructed from storage.
func sessionWithToken(s Session, token string) Session {
	s.Token = token
	return s
}

func sessionClearError(s Session) Session {
	s.Err = ""
	return s
}

// TokenExpiry reports the exp claim of the held token. Claims are read
// without signature verification; the client trusts the server that issued
// the token and only uses this for display.
func (s Session) TokenExpiry() (time.Time, bool) {
	if s.Token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// apps/go-server/internal/httpserver/session.go
//
// Session cookie naming the browser's current game.
// The value is an HS256 JWT carrying the game ID; tampered or expired tokens
// are treated as no session.

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errNoSession = errors.New("no session")

// signSession creates an HS256 token naming the browser's current game.
func (s *Server) signSession(gameID string) (string, time.Time, error) {
	exp := time.Now().Add(s.cfg.Session.TTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.Session.Secret))
	return ss, exp, err
}

// sessionGameID returns the game ID from a valid session cookie.
func (s *Server) sessionGameID(r *http.Request) (string, error) {
	c, err := r.Cookie(s.cfg.Session.CookieName)
	if err != nil || c.Value == "" {
		return "", errNoSession
	}
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Session.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return "", errNoSession
	}
	id, _ := claims["gid"].(string)
	if id == "" {
		return "", errNoSession
	}
	return id, nil
}

// setSessionCookie points the browser at gameID.
func (s *Server) setSessionCookie(w http.ResponseWriter, gameID string) error {
	token, exp, err := s.signSession(gameID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	return nil
}

package linksign

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Actions carried by quick-action links.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

var ErrInvalidLink = errors.New("invalid or expired action link")

type actionClaims struct {
	Action    string `json:"act"`
	BookingID uint   `json:"bid"`
	jwt.RegisteredClaims
}

// Signer mints and checks the single-use approve/reject tokens embedded in
// admin notification emails. Tokens are HS256 JWTs with an expiry and a
// unique id; "single use" is enforced downstream by the already-processed
// status check, not by a token store.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl}
}

func (s *Signer) Sign(action string, bookingID uint) (string, error) {
	now := time.Now()
	claims := actionClaims{
		Action:    action,
		BookingID: bookingID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("booking:%d", bookingID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Signer) Verify(tokenString, action string, bookingID uint) error {
	var claims actionClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidLink
	}

	if claims.Action != action || claims.BookingID != bookingID {
		return ErrInvalidLink
	}
	return nil
}

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/herbalif/herbalif/internal/common"
	"github.com/herbalif/herbalif/internal/models"
)

// claims carries the account identity inside the persisted session token.
type claims struct {
	jwt.RegisteredClaims
	Account models.Account `json:"account"`
}

func encodeToken(account models.Account, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Account: account,
	})
	return token.SignedString(secret)
}

func decodeToken(tokenString string, secret []byte) (*models.Account, error) {
	c := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, common.ErrInternal
	}

	return &c.Account, nil
}

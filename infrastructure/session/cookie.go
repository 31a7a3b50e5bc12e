package session

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

// CookieCodec assina o ID da sessão como um JWT HS256. O cookie carrega só
// o ID e a expiração; o estado fica no Store.
type CookieCodec struct {
	secret []byte
	now    func() time.Time
}

func NewCookieCodec(secret string) *CookieCodec {
	key := []byte(secret)
	if len(key) == 0 {
		logrus.Warn("SESSION_SECRET vazio. Usando chave aleatória; sessões não sobrevivem a um restart")
		key = make([]byte, 32)
		_, _ = rand.Read(key)
	}

	return &CookieCodec{
		secret: key,
		now:    time.Now,
	}
}

func (c *CookieCodec) Encode(sess *domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode valida assinatura e expiração e devolve o ID da sessão
func (c *CookieCodec) Decode(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(c.now))
	if err != nil || !token.Valid || claims.ID == "" {
		return "", ErrInvalidCookie
	}

	return claims.ID, nil
}

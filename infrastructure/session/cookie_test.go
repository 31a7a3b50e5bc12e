package session

import (
	"testing"
	"time"

	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodec(t *testing.T) {
	now := time.Now()
	codec := NewCookieCodec("segredo")

	sess := domain.NewSession("sess-1", now, time.Hour)
	value, err := codec.Encode(sess)
	require.NoError(t, err)

	t.Run("decodifica o ID", func(t *testing.T) {
		id, err := codec.Decode(value)
		require.NoError(t, err)
		assert.Equal(t, "sess-1", id)
	})

	t.Run("assinatura com outro segredo é rejeitada", func(t *testing.T) {
		_, err := NewCookieCodec("outro").Decode(value)
		assert.ErrorIs(t, err, ErrInvalidCookie)
	})

	t.Run("cookie expirado é rejeitado", func(t *testing.T) {
		later := NewCookieCodec("segredo")
		later.now = func() time.Time { return now.Add(2 * time.Hour) }
		_, err := later.Decode(value)
		assert.ErrorIs(t, err, ErrInvalidCookie)
	})

	t.Run("lixo é rejeitado", func(t *testing.T) {
		_, err := codec.Decode("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidCookie)
	})
}

package filestore

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/pkg/errors"
)

// RefreshTokenLog acrescenta um registro JSON por linha. O arquivo nunca é
// reescrito.
type RefreshTokenLog struct {
	path string
	mu   sync.Mutex
}

func NewRefreshTokenLog(path string) *RefreshTokenLog {
	return &RefreshTokenLog{path: path}
}

func (l *RefreshTokenLog) Append(_ context.Context, record domain.RefreshTokenRecord) error {
	line, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar refresh token")
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório de %s", l.path)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %s", l.path)
	}

	if _, err := f.Write(line); err != nil {
		f.Close()
		return errors.Wrapf(err, "erro ao gravar em %s", l.path)
	}

	return f.Close()
}

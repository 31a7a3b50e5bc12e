package redis

import (
	"context"
	"fmt"

	"github.com/insitemarketing/metryka-api/internal/config"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewClient abre a conexão e falha cedo se o Redis não responder
func NewClient(ctx context.Context, cfg config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: failed to connect to %s: %w", cfg.Addr, err)
	}

	logrus.WithFields(logrus.Fields{
		"addr": cfg.Addr,
		"db":   cfg.DB,
	}).Info("Conexão com Redis estabelecida com sucesso")

	return client, nil
}

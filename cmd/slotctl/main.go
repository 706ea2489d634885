package main

import (
	"context"
	"os"

	"slot-availability/config"
	"slot-availability/internal/delivery/cli"
	"slot-availability/internal/infrastructure/cache"
	"slot-availability/internal/service"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)

	root := cli.NewRoot(cli.Dependencies{
		LoadConfig: config.LoadConfig,
		RevocationStore: func(cfg *config.Config) (service.TokenRevocationStore, func(), error) {
			redisClient, err := cache.NewRedisClient(cfg.Redis)
			if err != nil {
				return nil, nil, err
			}
			return service.NewRedisTokenRevocationStore(redisClient, log), func() { redisClient.Close() }, nil
		},
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("slotctl: %v", err)
	}
}

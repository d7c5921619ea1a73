package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to stop the planner refresh worker
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		logrus.Info("Successfully stopped planner refresh worker")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	logrus.Info("Successfully closing Redis")

	if b.MongoDB != nil {
		err = b.MongoDB.Disconnect(ctx)
		if err != nil {
			return err
		}
		logrus.Info("Successfully closing MongoDB")
	}

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	logrus.Info("Successfully closing RabbitMQ")

	// zap returns an error when syncing stdout on some platforms; it is not fatal
	_ = b.Logger.Sync()
	logrus.Info("Successfully closing Logger")

	return nil
}

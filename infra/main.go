package infra

import (
	"context"

	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/infra/produce"
)

type Infra struct {
	Postgres *PostgresClient
	Redis    *RedisClient
	Minio    *MinioClient
	RabbitMQ *RabbitMQClient
	Logger   *LoggerClient
	Produce  *produce.Produce

	shutdownTelemetry func(context.Context) error
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	shutdownTelemetry := InitTelemetry(cfg.EnvConfig)

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	redis := InitRedisClient(cfg.EnvConfig)
	if redis == nil {
		panic("Failed to initialize Redis service")
	}

	minio := InitMinioClient(cfg.EnvConfig)
	if minio == nil {
		panic("Failed to initialize MinIO service")
	}

	if err := minio.EnsureBucket(context.Background()); err != nil {
		panic("Failed to ensure asset bucket: " + err.Error())
	}

	rabbitMQ := InitRabbitMQClient(cfg.EnvConfig)
	if rabbitMQ == nil {
		panic("Failed to initialize RabbitMQ service")
	}

	produceService := produce.InitProduce(rabbitMQ.Channel)
	if produceService == nil {
		panic("Failed to initialize Produce service")
	}

	infraInstance = &Infra{
		Postgres: postgres,
		Redis:    redis,
		Minio:    minio,
		RabbitMQ: rabbitMQ,
		Logger:   logger,
		Produce:  produceService,

		shutdownTelemetry: shutdownTelemetry,
	}

	return infraInstance
}

func GetInfra() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}

// Shutdown flushes telemetry and closes broker connections.
func (i *Infra) Shutdown(ctx context.Context) {
	if i.RabbitMQ != nil {
		i.RabbitMQ.Close()
	}
	if i.Logger != nil {
		_ = i.Logger.Shutdown(ctx)
	}
	if i.shutdownTelemetry != nil {
		_ = i.shutdownTelemetry(ctx)
	}
}

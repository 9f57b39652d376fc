package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Port     string
		Database string
		Username string
		Password string
	}
	JWT struct {
		SecretKey     string
		AccessExpire  int // seconds
		RefreshExpire int // seconds
	}
	CORS struct {
		AllowDomains string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		Database int
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint      string
		RootUser      string
		RootPassword  string
		Bucket        string
		UseSSL        bool
		PresignExpire int // seconds
	}
	Upload struct {
		MaxFileSize int64 // bytes
		KeyPrefix   string
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode  string
		Group string
	}
	DomainName string
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("PGPOOL_HOST")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	if val, err := strconv.Atoi(os.Getenv("JWT_ACCESS_EXPIRE")); err == nil && val > 0 {
		config.JWT.AccessExpire = val
	} else {
		config.JWT.AccessExpire = 3600
	}
	if val, err := strconv.Atoi(os.Getenv("JWT_REFRESH_EXPIRE")); err == nil && val > 0 {
		config.JWT.RefreshExpire = val
	} else {
		config.JWT.RefreshExpire = 3600 * 24 * 30
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	// Redis
	config.Redis.Host = os.Getenv("REDIS_HOST")
	config.Redis.Port = os.Getenv("REDIS_PORT")
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	if config.Redis.Host == "" {
		config.Redis.Host = "localhost"
	}
	if config.Redis.Port == "" {
		config.Redis.Port = "6379"
	}

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	if config.RabbitMQ.Host == "" {
		config.RabbitMQ.Host = "localhost"
	}
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	// MinIO
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.Bucket = os.Getenv("MINIO_BUCKET")
	if config.Minio.Bucket == "" {
		config.Minio.Bucket = "design-assets"
	}
	config.Minio.UseSSL = strings.ToLower(os.Getenv("MINIO_USE_SSL")) == "true"
	if val, err := strconv.Atoi(os.Getenv("MINIO_PRESIGN_EXPIRE")); err == nil && val > 0 {
		config.Minio.PresignExpire = val
	} else {
		config.Minio.PresignExpire = 3600 * 24
	}

	// Upload limits
	if val, err := strconv.ParseInt(os.Getenv("UPLOAD_MAX_FILE_SIZE"), 10, 64); err == nil && val > 0 {
		config.Upload.MaxFileSize = val
	} else {
		config.Upload.MaxFileSize = 50 * 1024 * 1024
	}
	config.Upload.KeyPrefix = os.Getenv("UPLOAD_KEY_PREFIX")
	if config.Upload.KeyPrefix == "" {
		config.Upload.KeyPrefix = "user_uploads"
	}

	// Grafana/OpenTelemetry
	otlpEndpoint := os.Getenv("GRAFANA_OTLP_ENDPOINT")
	otlpEndpoint = strings.TrimPrefix(otlpEndpoint, "https://")
	otlpEndpoint = strings.TrimPrefix(otlpEndpoint, "http://")
	config.Grafana.OTLPEndpoint = otlpEndpoint
	config.Grafana.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "gau-design-service"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}
	config.Environment.Group = os.Getenv("GROUP_NAME")
	if config.Environment.Group == "" {
		config.Environment.Group = "local"
	}

	config.DomainName = os.Getenv("DOMAIN_NAME")
	if config.DomainName == "" {
		config.DomainName = "localhost:8080"
	}

	return &config
}

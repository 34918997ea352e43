package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"SERVER_ENV" default:"development"`
		Port     string `envconfig:"SERVER_PORT" default:"8080"`
		LogLevel string `envconfig:"SERVER_LOG_LEVEL" default:"info"`
		Shutdown struct {
			GracePeriodSeconds int `envconfig:"SERVER_SHUTDOWN_GRACE_PERIOD_SECONDS" default:"10"`
		}
	}

	App struct {
		Name     string `envconfig:"APP_NAME" default:"atrium"`
		URL      string `envconfig:"APP_URL" default:"http://localhost:8080"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		APIKey   string `envconfig:"APP_API_KEY"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"APP_CORS_ALLOW_CREDENTIALS" default:"true"`
			AllowedHeaders   []string `envconfig:"APP_CORS_ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type,X-API-Key"`
			AllowedMethods   []string `envconfig:"APP_CORS_ALLOWED_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"APP_CORS_ALLOWED_ORIGINS" default:"*"`
			MaxAgeSeconds    int      `envconfig:"APP_CORS_MAX_AGE_SECONDS" default:"300"`
		}
		RateLimiter struct {
			Enable        bool `envconfig:"APP_RATE_LIMITER_ENABLE" default:"true"`
			MaxRequests   int  `envconfig:"APP_RATE_LIMITER_MAX_REQUESTS" default:"60"`
			WindowSeconds int  `envconfig:"APP_RATE_LIMITER_WINDOW_SECONDS" default:"60"`
		}
		Booking struct {
			TxTimeoutSeconds int `envconfig:"APP_BOOKING_TX_TIMEOUT_SECONDS" default:"5"`
			SlotDurationMin  int `envconfig:"APP_BOOKING_SLOT_DURATION_MINUTES" default:"60"`
		}
	}

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"CACHE_REDIS_PRIMARY_HOST" default:"localhost"`
				Port     string `envconfig:"CACHE_REDIS_PRIMARY_PORT" default:"6379"`
				Password string `envconfig:"CACHE_REDIS_PRIMARY_PASSWORD"`
				DB       int    `envconfig:"CACHE_REDIS_PRIMARY_DB" default:"0"`
			}
		}
		TTL int `envconfig:"CACHE_TTL_SECONDS" default:"300"`
	}

	JWT struct {
		AccessSecret     string `envconfig:"JWT_ACCESS_SECRET" default:"dev-access-secret"`
		RefreshSecret    string `envconfig:"JWT_REFRESH_SECRET" default:"dev-refresh-secret"`
		AccessExpireMin  int    `envconfig:"JWT_ACCESS_EXPIRE_MINUTES" default:"15"`
		RefreshExpireMin int    `envconfig:"JWT_REFRESH_EXPIRE_MINUTES" default:"10080"`
	}

	DB struct {
		Postgres struct {
			Read struct {
				Host     string `envconfig:"DB_POSTGRES_READ_HOST" default:"localhost"`
				Port     string `envconfig:"DB_POSTGRES_READ_PORT" default:"5432"`
				User     string `envconfig:"DB_POSTGRES_READ_USER" default:"postgres"`
				Password string `envconfig:"DB_POSTGRES_READ_PASSWORD"`
				Name     string `envconfig:"DB_POSTGRES_READ_NAME" default:"atrium"`
				SSLMode  string `envconfig:"DB_POSTGRES_READ_SSL_MODE" default:"disable"`
			}
			Write struct {
				Host     string `envconfig:"DB_POSTGRES_WRITE_HOST" default:"localhost"`
				Port     string `envconfig:"DB_POSTGRES_WRITE_PORT" default:"5432"`
				User     string `envconfig:"DB_POSTGRES_WRITE_USER" default:"postgres"`
				Password string `envconfig:"DB_POSTGRES_WRITE_PASSWORD"`
				Name     string `envconfig:"DB_POSTGRES_WRITE_NAME" default:"atrium"`
				SSLMode  string `envconfig:"DB_POSTGRES_WRITE_SSL_MODE" default:"disable"`
			}
			MigrationTable string `envconfig:"DB_POSTGRES_MIGRATION_TABLE" default:"schema_migrations"`

			MaxOpenConns  int `envconfig:"DB_POSTGRES_MAX_OPEN_CONNS" default:"25"`
			MaxIdleConns  int `envconfig:"DB_POSTGRES_MAX_IDLE_CONNS" default:"5"`
			MaxRetry      int `envconfig:"DB_POSTGRES_MAX_RETRY" default:"3"`
			RetryWaitTime int `envconfig:"DB_POSTGRES_RETRY_WAIT_TIME_SECONDS" default:"5"`
		}
	}

	Kafka struct {
		Brokers       []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
		ConsumerGroup string   `envconfig:"KAFKA_CONSUMER_GROUP" default:"atrium"`
		SASL          struct {
			Username string `envconfig:"KAFKA_SASL_USERNAME"`
			Password string `envconfig:"KAFKA_SASL_PASSWORD"`
		}
		Topics struct {
			BookingCreated string `envconfig:"KAFKA_TOPIC_BOOKING_CREATED" default:"booking.created"`
		}
	}

	External struct {
		Otel struct {
			Endpoint string `envconfig:"EXTERNAL_OTEL_ENDPOINT" default:"localhost:4317"`
		}
		S3 struct {
			Endpoint  string `envconfig:"EXTERNAL_S3_ENDPOINT"`
			Region    string `envconfig:"EXTERNAL_S3_REGION" default:"us-east-1"`
			AccessKey string `envconfig:"EXTERNAL_S3_ACCESS_KEY"`
			SecretKey string `envconfig:"EXTERNAL_S3_SECRET_KEY"`
			Bucket    string `envconfig:"EXTERNAL_S3_BUCKET" default:"atrium-rooms"`
			BaseURL   string `envconfig:"EXTERNAL_S3_BASE_URL"`
		}
	}
}

var (
	conf Config
	once sync.Once
)

func Get() *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil {
			log.Info().Msg("no .env file found, reading configuration from environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to process configuration")
		}
	})

	return &conf
}

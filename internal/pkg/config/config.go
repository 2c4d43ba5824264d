package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Seckill   SeckillConfig
	Worker    WorkerConfig
	Kafka     KafkaConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"50"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"100"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// SeckillConfig holds the snapshot-store protocol settings shared by every instance.
type SeckillConfig struct {
	StreamKey      string        `envconfig:"SECKILL_STREAM_KEY" default:"stream.orders"`
	DeadLetterKey  string        `envconfig:"SECKILL_DEAD_LETTER_KEY" default:"stream.orders.dead"`
	Group          string        `envconfig:"SECKILL_GROUP" default:"g1"`
	OrderIDPrefix  string        `envconfig:"SECKILL_ORDER_ID_PREFIX" default:"order"`
	IDEpoch        int64         `envconfig:"SECKILL_ID_EPOCH" default:"1640995200"` // 2022-01-01T00:00:00Z
	LockTTL        time.Duration `envconfig:"SECKILL_LOCK_TTL" default:"10s"`
	PreloadOnStart bool          `envconfig:"SECKILL_PRELOAD_ON_START" default:"true"`
}

type WorkerConfig struct {
	Enabled         bool          `envconfig:"WORKER_ENABLED" default:"true"`
	Consumers       int           `envconfig:"WORKER_CONSUMERS" default:"1"`
	ConsumerName    string        `envconfig:"WORKER_CONSUMER_NAME" default:""` // must be stable across restarts; hostname when empty
	BlockTimeout    time.Duration `envconfig:"WORKER_BLOCK_TIMEOUT" default:"2s"`
	RecoveryBackoff time.Duration `envconfig:"WORKER_RECOVERY_BACKOFF" default:"20ms"`
	RetryInterval   time.Duration `envconfig:"WORKER_RETRY_INTERVAL" default:"5s"` // wait before replaying entries that kept failing
	ClaimMinIdle    time.Duration `envconfig:"WORKER_CLAIM_MIN_IDLE" default:"1m"`
	ClaimInterval   time.Duration `envconfig:"WORKER_CLAIM_INTERVAL" default:"30s"`
	ClaimBatch      int64         `envconfig:"WORKER_CLAIM_BATCH" default:"100"`
}

type KafkaConfig struct {
	Brokers       []string      `envconfig:"KAFKA_BROKERS" default:""`
	Topic         string        `envconfig:"KAFKA_TOPIC" default:"voucher-order-events"`
	RelayInterval time.Duration `envconfig:"KAFKA_RELAY_INTERVAL" default:"1s"`
	RelayBatch    int32         `envconfig:"KAFKA_RELAY_BATCH" default:"100"`
	BatchTimeout  time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
}

type TelemetryConfig struct {
	ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"voucher-seckill"`
	ServiceVersion string `envconfig:"OTEL_SERVICE_VERSION" default:"0.1.0"`
	Endpoint       string `envconfig:"OTEL_ENDPOINT" default:""` // tracing disabled when empty
	URLPath        string `envconfig:"OTEL_TRACES_PATH" default:"/v1/traces"`
	Insecure       bool   `envconfig:"OTEL_INSECURE" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0 && c.Brokers[0] != ""
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Worker.Consumers < 1 {
		return fmt.Errorf("WORKER_CONSUMERS must be at least 1, got %d", c.Worker.Consumers)
	}
	if c.Worker.RetryInterval <= 0 {
		return fmt.Errorf("WORKER_RETRY_INTERVAL must be positive, got %s", c.Worker.RetryInterval)
	}
	if c.Kafka.RelayInterval <= 0 {
		return fmt.Errorf("KAFKA_RELAY_INTERVAL must be positive, got %s", c.Kafka.RelayInterval)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Redis: RedisConfig{
			Addr:         "localhost:16379",
			PoolSize:     50,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Seckill: SeckillConfig{
			StreamKey:     "stream.orders",
			DeadLetterKey: "stream.orders.dead",
			Group:         "g1",
			OrderIDPrefix: "order",
			IDEpoch:       1640995200,
			LockTTL:       10 * time.Second,
		},
		Worker: WorkerConfig{
			Enabled:         true,
			Consumers:       1,
			ConsumerName:    "test-consumer",
			BlockTimeout:    100 * time.Millisecond,
			RecoveryBackoff: 10 * time.Millisecond,
			RetryInterval:   100 * time.Millisecond,
			ClaimMinIdle:    time.Minute,
			ClaimInterval:   30 * time.Second,
			ClaimBatch:      100,
		},
		Kafka: KafkaConfig{
			Topic:         "voucher-order-events",
			RelayInterval: time.Second,
			RelayBatch:    100,
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "voucher-seckill-test",
			ServiceVersion: "test",
		},
	}
}

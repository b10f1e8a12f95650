package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPaymentTimeoutCron  = "* * * * *"
	defaultPaymentTimeout      = 15 * time.Minute
	defaultDeliveryTimeoutCron = "0 1 * * *"
	defaultDeliveryTimeout     = 60 * time.Minute
	defaultSweepConcurrency    = 4
	defaultSweepTickTimeout    = 50 * time.Second
	defaultDishCacheTTL        = time.Hour
)

type (
	Tasks struct {
		PaymentTimeoutCron  string
		PaymentTimeout      time.Duration
		DeliveryTimeoutCron string
		DeliveryTimeout     time.Duration
		SweepConcurrency    int
		SweepTickTimeout    time.Duration // верхняя граница одного прохода свипера
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill per second
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host        string
		Port        string
		User        string
		Password    string
		DBName      string
		SSLMode     string
		AutoMigrate bool
	}

	Redis struct {
		Addr         string
		Password     string
		DB           int
		DishCacheTTL time.Duration
	}

	Auth struct {
		UserSecret  string
		AdminSecret string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderPaid OrderPaid
	}

	OrderPaid struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Auth     Auth
		Kafka    Kafka
	}
)

// LoadService читает конфигурацию HTTP-сервиса со свипером.
func LoadService() (*Config, error) {
	return load(validateDatabase, validateServer, validateRedis, validateAuth, validateTasks)
}

// LoadPaymentWorker читает конфигурацию воркера событий оплаты.
func LoadPaymentWorker() (*Config, error) {
	return load(validateDatabase, validateKafka)
}

func load(validators ...func(*Config) error) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	for _, validate := range validators {
		if err := validate(cfg); err != nil {
			return nil, fmt.Errorf("validation: %w", err)
		}
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	paymentTimeout, err := osGetEnvDuration("ORDER_PAYMENT_TIMEOUT", defaultPaymentTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	deliveryTimeout, err := osGetEnvDuration("ORDER_DELIVERY_TIMEOUT", defaultDeliveryTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sweepConcurrency, err := osGetInt("ORDER_SWEEP_CONCURRENCY", defaultSweepConcurrency)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sweepTickTimeout, err := osGetEnvDuration("ORDER_SWEEP_TICK_TIMEOUT", defaultSweepTickTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderPaidTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_PAID_PROCESS_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoMigrate, err := osGetBool("POSTGRES_AUTO_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dishCacheTTL, err := osGetEnvDuration("DISH_CACHE_TTL", defaultDishCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PaymentTimeoutCron:  osGetString("ORDER_PAYMENT_TIMEOUT_CRON", defaultPaymentTimeoutCron),
			PaymentTimeout:      paymentTimeout,
			DeliveryTimeoutCron: osGetString("ORDER_DELIVERY_TIMEOUT_CRON", defaultDeliveryTimeoutCron),
			DeliveryTimeout:     deliveryTimeout,
			SweepConcurrency:    sweepConcurrency,
			SweepTickTimeout:    sweepTickTimeout,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:        os.Getenv("POSTGRES_HOST"),
			Port:        os.Getenv("POSTGRES_PORT"),
			User:        os.Getenv("POSTGRES_USER"),
			Password:    os.Getenv("POSTGRES_PASSWORD"),
			DBName:      os.Getenv("POSTGRES_DB"),
			SSLMode:     os.Getenv("POSTGRES_SSLMODE"),
			AutoMigrate: autoMigrate,
		},
		Redis: Redis{
			Addr:         os.Getenv("REDIS_ADDR"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           redisDB,
			DishCacheTTL: dishCacheTTL,
		},
		Auth: Auth{
			UserSecret:  os.Getenv("JWT_USER_SECRET"),
			AdminSecret: os.Getenv("JWT_ADMIN_SECRET"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderPaid: OrderPaid{
					ProcessTimeout: orderPaidTimeout,
				},
			},
		},
	}, nil
}

func validateServer(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	return nil
}

func validateDatabase(cfg *Config) error {
	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateRedis(cfg *Config) error {
	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if cfg.Redis.DishCacheTTL <= 0 {
		return errors.New("DISH_CACHE_TTL must be positive")
	}
	return nil
}

func validateAuth(cfg *Config) error {
	if cfg.Auth.UserSecret == "" {
		return errors.New("JWT_USER_SECRET is required")
	}
	if cfg.Auth.AdminSecret == "" {
		return errors.New("JWT_ADMIN_SECRET is required")
	}
	if cfg.Auth.UserSecret == cfg.Auth.AdminSecret {
		return errors.New("JWT_USER_SECRET and JWT_ADMIN_SECRET must differ")
	}
	return nil
}

func validateTasks(cfg *Config) error {
	if cfg.Tasks.PaymentTimeout <= 0 {
		return errors.New("ORDER_PAYMENT_TIMEOUT must be positive")
	}
	if cfg.Tasks.DeliveryTimeout <= 0 {
		return errors.New("ORDER_DELIVERY_TIMEOUT must be positive")
	}
	if cfg.Tasks.SweepConcurrency < 1 {
		return errors.New("ORDER_SWEEP_CONCURRENCY must be at least 1")
	}
	if cfg.Tasks.SweepTickTimeout <= 0 {
		return errors.New("ORDER_SWEEP_TICK_TIMEOUT must be positive")
	}
	return nil
}

func validateKafka(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderPaid.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_PAID_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetString(s, def string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return def
}

func osGetInt(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

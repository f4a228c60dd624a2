package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultDailyLimit   = 5
	defaultPageSize     = 10
	defaultWorkDayStart = "07:59:59"
	defaultWorkDayEnd   = "18:00:00"
	timeOfDayLayout     = "15:04:05"
)

type (
	Tasks struct {
		PickupStatsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // пополнение токенов в секунду
		RateLimiterBurst int           // емкость бакета
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// TimeOfDay время внутри суток, без даты.
	TimeOfDay struct {
		Hour   int
		Minute int
		Second int
	}

	Pickup struct {
		DailyLimit   int64
		PageSize     uint64
		WorkDayStart TimeOfDay
		WorkDayEnd   TimeOfDay
		Location     *time.Location
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
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Pickup   Pickup
		Kafka    Kafka
	}
)

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Before сравнивает только время суток.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{
		Hour:   parsed.Hour(),
		Minute: parsed.Minute(),
		Second: parsed.Second(),
	}, nil
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	pickup, err := loadPickupFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pickupStatsInterval, err := osGetEnvDuration("BACKGROUND_PICKUP_STATS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PickupStatsInterval: pickupStatsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: LoadDatabase(),
		Pickup:   *pickup,
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
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

// LoadDatabase читает только параметры подключения к Postgres,
// используется мигратором и интеграционными тестами.
func LoadDatabase() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

// Бизнес-правила забора имеют значения по умолчанию, остальное обязательно.
func loadPickupFromEnv() (*Pickup, error) {
	dailyLimit, err := osGetInt("PICKUP_DAILY_LIMIT")
	if err != nil {
		return nil, err
	}
	if os.Getenv("PICKUP_DAILY_LIMIT") == "" {
		dailyLimit = defaultDailyLimit
	}

	pageSize, err := osGetInt("PICKUP_PAGE_SIZE")
	if err != nil {
		return nil, err
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	workDayStart, err := osGetTimeOfDay("PICKUP_WORKDAY_START", defaultWorkDayStart)
	if err != nil {
		return nil, err
	}

	workDayEnd, err := osGetTimeOfDay("PICKUP_WORKDAY_END", defaultWorkDayEnd)
	if err != nil {
		return nil, err
	}

	location, err := osGetLocation("PICKUP_TIMEZONE")
	if err != nil {
		return nil, err
	}

	return &Pickup{
		DailyLimit:   int64(dailyLimit),
		PageSize:     uint64(pageSize), //nolint:gosec // отрицательные значения отсекает validateConfig
		WorkDayStart: workDayStart,
		WorkDayEnd:   workDayEnd,
		Location:     location,
	}, nil
}

func validateConfig(cfg *Config) error {
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

	if err := ValidateDatabase(&cfg.Database); err != nil {
		return err
	}

	if err := ValidatePickup(&cfg.Pickup); err != nil {
		return err
	}

	if cfg.Tasks.PickupStatsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PICKUP_STATS_INTERVAL is required")
	}

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

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func ValidateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func ValidatePickup(cfg *Pickup) error {
	if cfg.DailyLimit < 0 {
		return errors.New("PICKUP_DAILY_LIMIT must not be negative")
	}
	if cfg.PageSize == 0 {
		return errors.New("PICKUP_PAGE_SIZE must be positive")
	}
	if !cfg.WorkDayStart.Before(cfg.WorkDayEnd) {
		return fmt.Errorf("PICKUP_WORKDAY_START (%s) must be before PICKUP_WORKDAY_END (%s)",
			cfg.WorkDayStart, cfg.WorkDayEnd)
	}
	if cfg.Location == nil {
		return errors.New("PICKUP_TIMEZONE is invalid")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
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

func osGetTimeOfDay(s, fallback string) (TimeOfDay, error) {
	val := os.Getenv(s)
	if val == "" {
		val = fallback
	}

	res, err := ParseTimeOfDay(val)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// Пустое значение - локальная зона сервера.
func osGetLocation(s string) (*time.Location, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Local, nil
	}

	res, err := time.LoadLocation(val)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone for %s=%q: %w", s, val, err)
	}
	return res, nil
}

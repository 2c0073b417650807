package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App
		Token   *Token
		API     *API
		DB      *DB
		HTTP    *HTTP
		Redis   *Redis
		Session *Session
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration time.Duration
	}

	API struct {
		URL     string
		Timeout time.Duration
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
		CookieSecure   bool
		CookieMaxAge   time.Duration
	}

	Redis struct {
		Address  string
		Password string
		DB       int
	}

	Session struct {
		// Backend is one of memory, redis or postgres.
		Backend string
		TTL     time.Duration
		IdleTTL time.Duration
	}
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "goride-admin"),
		Env:  getEnv("APP_ENV", "development"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: getDuration("TOKEN_DURATION", 7*24*time.Hour),
	}
	if token.Secret == "" {
		if app.Env == "production" {
			return nil, errors.New("TOKEN_SECRET is required in production")
		}
		token.Secret = "goride-dev-secret"
	}

	api := &API{
		URL:     getEnv("GORIDE_API_URL", "https://prn-232-be.vercel.app/api/v1"),
		Timeout: getDuration("GORIDE_API_TIMEOUT", 15*time.Second),
	}

	db := &DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
		CookieSecure:   getBool("COOKIE_SECURE", app.Env == "production"),
		CookieMaxAge:   token.Duration,
	}

	redis := &Redis{
		Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getInt("REDIS_DB", 0),
	}

	session := &Session{
		Backend: getEnv("SESSION_BACKEND", BackendMemory),
		TTL:     getDuration("SESSION_TTL", token.Duration),
		IdleTTL: getDuration("SESSION_IDLE_TTL", 30*time.Minute),
	}
	switch session.Backend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return nil, errors.New("SESSION_BACKEND must be memory, redis or postgres")
	}

	return &Container{
		App:     app,
		Token:   token,
		API:     api,
		DB:      db,
		HTTP:    http,
		Redis:   redis,
		Session: session,
	}, nil
}

func (d *DB) DSN() string {
	return "host=" + d.Host + " port=" + d.Port + " user=" + d.User +
		" password=" + d.Password + " dbname=" + d.Name + " sslmode=" + d.SSLMode
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}

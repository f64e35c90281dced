package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Redis    *Redis
	Kafka    *Kafka
	Push     *Push
	Auth     *Auth
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDRESS"`
}

type Kafka struct {
	Brokers    []string `env:"KAFKA_BROKERS" envSeparator:","`
	AuditTopic string   `env:"KAFKA_AUDIT_TOPIC"`
}

type Push struct {
	HostString string `env:"PUSH_GATEWAY_ADDRESS"`
	Workers    int    `env:"PUSH_WORKERS"`
}

type Auth struct {
	// TokenKey is the hex-encoded PASETO v4 symmetric key shared with the
	// identity provider that issues the tokens.
	TokenKey string `env:"TOKEN_KEY"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var redis Redis
	var kafka Kafka
	var push Push
	var auth Auth
	var app App

	var brokers string

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&redis.Addr, "c", `localhost:6379`, "Redis address")
	flag.StringVar(&brokers, "k", "", "Kafka broker list, comma separated")
	flag.StringVar(&kafka.AuditTopic, "t", `order-audit`, "Kafka audit topic")
	flag.StringVar(&push.HostString, "p", "", "Push gateway address")
	flag.IntVar(&push.Workers, "w", 2, "Push delivery workers")
	flag.StringVar(&auth.TokenKey, "s", "", "Hex-encoded token key shared with the identity provider")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	if brokers != "" {
		kafka.Brokers = strings.Split(brokers, ",")
	}

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&kafka)
	if err != nil {
		return nil, fmt.Errorf("error parsing kafka config: %w", err)
	}
	err = env.Parse(&push)
	if err != nil {
		return nil, fmt.Errorf("error parsing push config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Redis:    &redis,
		Kafka:    &kafka,
		Push:     &push,
		Auth:     &auth,
		App:      &app,
	}

	return &config, nil
}

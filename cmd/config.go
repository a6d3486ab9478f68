package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AmqpURL is optional; when empty, completed-order events are logged
	// instead of published.
	AmqpURL string

	// RedisAddr is optional; when empty, seat holds live in process memory.
	RedisAddr string

	HoldTTL           time.Duration
	AbandonedOrderAge time.Duration
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"boxoffice/cmd"
	"boxoffice/internal/adapters/out/memory"
	"boxoffice/internal/adapters/out/postgres/seatrepo"
	"boxoffice/internal/adapters/out/queue"
	"boxoffice/internal/adapters/out/redisstore"
	"boxoffice/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultHoldTTL           = 5 * time.Minute
	defaultAbandonedOrderAge = 30 * time.Minute
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		createHoldStore(configs),
		createPublisher(configs, logger),
		logger,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:          envVariable("HTTP_PORT"),
		DBHost:            envVariable("DB_HOST"),
		DBPort:            envVariable("DB_PORT"),
		DBUser:            envVariable("DB_USER"),
		DBPassword:        envVariable("DB_PASSWORD"),
		DBName:            envVariable("DB_NAME"),
		DBSslMode:         envVariable("DB_SSLMODE"),
		AmqpURL:           envVariable("AMQP_URL"),
		RedisAddr:         envVariable("REDIS_ADDR"),
		HoldTTL:           durationVariable("HOLD_TTL", defaultHoldTTL),
		AbandonedOrderAge: durationVariable("ABANDONED_ORDER_AGE", defaultAbandonedOrderAge),
	}
	return config
}

func envVariable(key string) string {
	return os.Getenv(key)
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError maps driver duplicate-key failures onto
	// gorm.ErrDuplicatedKey, which the seat registry relies on to detect
	// double sales.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&seatrepo.SoldSeatDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func createHoldStore(configs cmd.Config) ports.SeatHoldStore {
	if configs.RedisAddr == "" {
		return memory.NewHoldStore()
	}

	rdb := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	return redisstore.NewHoldStore(rdb)
}

func createPublisher(configs cmd.Config, logger *slog.Logger) ports.EventPublisher {
	if configs.AmqpURL == "" {
		return queue.NewNoopPublisher(logger)
	}

	conn, err := amqp.Dial(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Failed to connect to AMQP broker: %v", err)
	}
	return queue.NewAmqpPublisher(conn, logger)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

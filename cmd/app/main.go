package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fasttechfoods/cmd"
	"fasttechfoods/internal/adapters/out/postgres/kitchenrepo"
	"fasttechfoods/internal/adapters/out/postgres/orderrepo"
	"fasttechfoods/internal/adapters/out/postgres/outboxrepo"
	"fasttechfoods/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)
	broker := mustConnectBroker(configs)
	defer func() { _ = broker.Close() }()

	app := cmd.NewCompositionRoot(configs, gormDB, broker, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background workers: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		RabbitMQURL:        goDotEnvVariable("RABBITMQ_URL"),
		QueueDeliveryLimit: goDotEnvIntVariable("QUEUE_DELIVERY_LIMIT"),
		QueuePrefetch:      goDotEnvIntVariable("QUEUE_PREFETCH"),
		ConsumerWorkers:    goDotEnvIntVariable("CONSUMER_WORKERS"),

		MenuServiceURL:    goDotEnvVariable("MENU_SERVICE_URL"),
		AuthServiceURL:    goDotEnvVariable("AUTH_SERVICE_URL"),
		OrderServiceURL:   goDotEnvVariable("ORDER_SERVICE_URL"),
		RemoteTimeoutSecs: goDotEnvIntVariable("REMOTE_TIMEOUT_SECONDS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&kitchenrepo.TicketDTO{},
		&kitchenrepo.TicketItemDTO{},
		&outboxrepo.MessageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func mustConnectBroker(configs cmd.Config) *rabbitmq.Broker {
	broker, err := rabbitmq.NewBroker(rabbitmq.Config{
		URL:           configs.RabbitMQURL,
		DeliveryLimit: configs.QueueDeliveryLimit,
		Prefetch:      configs.QueuePrefetch,
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	return broker
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e, app.CreateIdentityClient())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

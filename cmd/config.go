package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitMQURL        string
	QueueDeliveryLimit int
	QueuePrefetch      int
	ConsumerWorkers    int

	MenuServiceURL    string
	AuthServiceURL    string
	OrderServiceURL   string
	RemoteTimeoutSecs int
}

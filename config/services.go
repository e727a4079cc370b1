package config

import (
	"time"

	"github.com/shopspring/decimal"
)

type POS struct {
	Redis
	Postgres
	Kafka

	Port     string `envconfig:"PORT" default:"8081"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TaxRate is a fraction, 0.006 means 0.6%.
	TaxRate        decimal.Decimal   `envconfig:"TAX_RATE" default:"0.006"`
	CurrencySymbol string            `envconfig:"CURRENCY_SYMBOL" default:"RM"`
	CurrencyCode   string            `envconfig:"CURRENCY_CODE" default:"MYR"`
	DiscountCodes  map[string]string `envconfig:"DISCOUNT_CODES"`

	SnapshotBackend string        `envconfig:"SNAPSHOT_BACKEND" default:"redis"`
	SnapshotKey     string        `envconfig:"SNAPSHOT_KEY" default:"cart"`
	SaveTimeout     time.Duration `envconfig:"SNAPSHOT_SAVE_TIMEOUT" default:"2s"`
	LoadingDelay    time.Duration `envconfig:"LOADING_DELAY" default:"300ms"`

	KafkaEnabled   bool          `envconfig:"KAFKA_ENABLED" default:"false"`
	OrderTopic     string        `envconfig:"ORDER_TOPIC" default:"order-tickets"`
	PublishTimeout time.Duration `envconfig:"ORDER_PUBLISH_TIMEOUT" default:"3s"`
	ReceiptBaseURL string        `envconfig:"RECEIPT_BASE_URL" default:"http://localhost:8080"`
}

type Kitchen struct {
	Kafka

	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	OrderTopic string `envconfig:"ORDER_TOPIC" default:"order-tickets"`
	GroupID    string `envconfig:"KITCHEN_GROUP_ID" default:"kitchen-svc"`
}

type Gateway struct {
	Port        string `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	PosSvcURL   string `envconfig:"POS_SVC_URL" default:"http://localhost:8081"`
	FrontendDir string `envconfig:"FRONTEND_DIR" default:"./frontend"`
}

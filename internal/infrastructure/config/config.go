package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

// Config holds the service configuration. Every value comes from the environment
// (optionally seeded by a .env file) with the defaults set in Load.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Log           LogConfig           `mapstructure:"log"`
	AWS           AWSConfig           `mapstructure:"aws"`
	Tables        TablesConfig        `mapstructure:"tables"`
	MercadoPago   MercadoPagoConfig   `mapstructure:"mercadopago"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LogConfig configures the global zap logger. Format is "json" or "console".
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AWSConfig configures the DynamoDB client. Endpoint is set for DynamoDB Local.
type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

type TablesConfig struct {
	Claims      string `mapstructure:"claims"`
	Supplements string `mapstructure:"supplements"`
	Parties     string `mapstructure:"parties"`
	Payments    string `mapstructure:"payments"`
	AuditLog    string `mapstructure:"audit_log"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
	Mock            bool   `mapstructure:"mock"`
}

type NotificationsConfig struct {
	QueueSize int `mapstructure:"queue_size"`
}

// envKeys maps config keys to the environment variables the service has always used.
var envKeys = map[string][]string{
	"server.port":                    {"PORT"},
	"log.level":                      {"LOG_LEVEL"},
	"log.format":                     {"LOG_FORMAT"},
	"aws.region":                     {"AWS_REGION"},
	"aws.access_key_id":              {"AWS_ACCESS_KEY_ID"},
	"aws.secret_access_key":          {"AWS_SECRET_ACCESS_KEY"},
	"aws.dynamodb_endpoint":          {"DYNAMODB_ENDPOINT"},
	"tables.claims":                  {"CLAIMS_TABLE"},
	"tables.supplements":             {"SUPPLEMENTS_TABLE"},
	"tables.parties":                 {"PARTIES_TABLE"},
	"tables.payments":                {"PAYMENTS_TABLE"},
	"tables.audit_log":               {"AUDIT_LOG_TABLE"},
	"mercadopago.access_token":       {"MERCADOPAGO_ACCESS_TOKEN"},
	"mercadopago.test_payer_email":   {"MERCADOPAGO_TEST_PAYER_EMAIL"},
	"mercadopago.test_payer_user_id": {"MERCADOPAGO_TEST_PAYER_USER_ID"},
	"mercadopago.mock":               {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
	"notifications.queue_size":       {"NOTIFICATION_QUEUE_SIZE"},
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.dynamodb_endpoint", "")
	v.SetDefault("tables.claims", "claims")
	v.SetDefault("tables.supplements", "supplements")
	v.SetDefault("tables.parties", "parties")
	v.SetDefault("tables.payments", "payments")
	v.SetDefault("tables.audit_log", "audit_log")
	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.test_payer_email", "")
	v.SetDefault("mercadopago.test_payer_user_id", "")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("notifications.queue_size", 256)

	for key, envs := range envKeys {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, eris.Wrapf(err, "config: bind %s", key)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	cfg.MercadoPago.AccessToken = strings.TrimSpace(cfg.MercadoPago.AccessToken)
	if cfg.Notifications.QueueSize <= 0 {
		cfg.Notifications.QueueSize = 1
	}
	return &cfg, nil
}

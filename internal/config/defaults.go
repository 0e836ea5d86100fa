package config

import "time"

const (
	defaultPort             = 8080
	defaultLogLevel         = "info"
	defaultOperationTimeout = 3 * time.Second
	defaultServiceName      = "blood-donor-connector"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "blood_donor",
}

var defaultKafka = Kafka{
	Topic:   "blood-requests",
	GroupID: "donor-notifier",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       10,
	Burst:      20,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings (no brokers, so disabled).
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

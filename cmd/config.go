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

	RedisAddr string
	CartTTL   time.Duration

	KafkaHost               string
	KafkaNotificationsTopic string

	DeliveryFee   int64
	WelcomeBonus  int64
	PaymentMaxAge time.Duration
}

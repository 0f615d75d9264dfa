package redis

import "time"

// Config is the environment-driven Redis connection configuration.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required"`                     // connection string, e.g. redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // initial connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`   // pause between connection attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"` // overall budget for the retry loop
}

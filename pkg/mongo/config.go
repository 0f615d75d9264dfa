package mongo

import "time"

// Config is the environment-driven MongoDB connection configuration.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // connection string, e.g. mongodb://localhost:27017
	Database        string        `env:"MONGODB_DATABASE" envDefault:"bundler"`        // database holding the plan and store collections
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // per-attempt connect timeout
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // connection pool ceiling
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // connections kept warm
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // idle connection lifetime
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`       // retry write operations once on transient errors
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`        // retry read operations once on transient errors
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // initial connection attempts before giving up
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // pause between connection attempts
}

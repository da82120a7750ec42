package mongo

import "time"

// Config describes the connection shared by every validated collection of an
// application. Load it with config.Load; only MONGODB_URL is mandatory.
type Config struct {
	// ConnectionURL is a standard mongodb:// or mongodb+srv:// URI.
	ConnectionURL string `env:"MONGODB_URL,required"`

	// ConnectTimeout bounds a single dial. New may dial several times.
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`

	// Pool bounds. Schema validation runs before a write is sent, so a
	// rejected document never takes a connection from the pool.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`

	// Driver level retries of individual operations after transient errors.
	RetryWrites bool `env:"MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads  bool `env:"MONGODB_RETRY_READS" envDefault:"true"`

	// Startup retries performed by New. Values below 1 mean a single attempt.
	RetryAttempts int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

package config

import "time"

type Relay struct {
	BatchSize uint32        `env:"RELAY_BATCH_SIZE" envDefault:"100" validate:"gte=1,lte=10000"`
	Interval  time.Duration `env:"RELAY_INTERVAL" envDefault:"1s" validate:"gt=0"`
}

package config

import "time"

type Postgres struct {
	Host     string `env:"POSTGRES_HOST,required" validate:"required"`
	Port     int    `env:"POSTGRES_PORT,required" validate:"gte=1,lte=65535"`
	User     string `env:"POSTGRES_USER,required" validate:"required"`
	Password string `env:"POSTGRES_PASSWORD,required"`
	DB       string `env:"POSTGRES_DB,required" validate:"required"`
	SSLMode  string `env:"POSTGRES_SSL_MODE,required" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	MaxConns        int32         `env:"POSTGRES_MAX_CONNS,required" validate:"gte=1"`
	MinConns        int32         `env:"POSTGRES_MIN_CONNS,required" validate:"gte=0,ltefield=MaxConns"`
	MaxConnLifetime time.Duration `env:"POSTGRES_MAX_CONN_LIFETIME,required"`
	MaxConnIdleTime time.Duration `env:"POSTGRES_MAX_CONN_IDLE_TIME,required"`
}

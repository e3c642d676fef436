package config

type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES,required" envSeparator:"," validate:"min=1,dive,hostname_port"`
	Group     string   `env:"KAFKA_GROUP,required" validate:"required"`
}

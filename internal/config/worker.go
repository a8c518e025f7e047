package config

import "time"

type Worker struct {
	WarmInterval time.Duration `env:"WORKER_WARM_INTERVAL" envDefault:"5m"`
	QueueName    string        `env:"WORKER_QUEUE_NAME" envDefault:"default"`
}

package config

import "time"

type HTTP struct {
	Address         string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ProbeAddress    string        `env:"HTTP_PROBE_ADDRESS" envDefault:":8091"`
	MetricAddress   string        `env:"HTTP_METRIC_ADDRESS" envDefault:":8092"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

package configs

// Telemetry configures OpenTelemetry tracing. Endpoint is a host:port for
// the OTLP/HTTP exporter; when it is empty spans are written to stderr.
type Telemetry struct {
	Enabled     bool    `env:"ENABLED" envDefault:"false"`
	Endpoint    string  `env:"ENDPOINT"`
	Insecure    bool    `env:"INSECURE" envDefault:"true"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"crowdfund"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}

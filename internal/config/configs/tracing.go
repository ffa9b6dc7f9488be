package configs

// Tracing configures the optional OpenTelemetry request tracing. Disabled
// by default; when enabled, spans are exported to the configured Jaeger
// collector endpoint.
type Tracing struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	Endpoint    string `env:"ENDPOINT" envDefault:"http://localhost:14268/api/traces"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"offerchain"`
}

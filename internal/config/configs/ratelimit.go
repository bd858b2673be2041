package configs

// RateLimit configures the per-client request limiter. Rate uses the
// ulule/limiter formatted notation, e.g. "100-M" for 100 requests per
// minute.
type RateLimit struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Rate    string `env:"RATE" envDefault:"100-M"`
}

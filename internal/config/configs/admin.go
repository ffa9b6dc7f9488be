package configs

// Admin holds the shared basic-auth credential gating the admin surface.
// This is a single shared secret, not per-user identity; the defaults
// match the historical deployment and must be overridden in production.
type Admin struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD" envDefault:"admin123"`
}

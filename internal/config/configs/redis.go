package configs

import "time"

// Redis configures the optional cache in front of the public offer list.
// Leaving Address empty disables caching entirely; the catalog then reads
// the store on every request.
type Redis struct {
	Address  string `env:"ADDRESS" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	// OfferTTL bounds how long a cached offer list may outlive a catalog
	// mutation made by another process.
	OfferTTL time.Duration `env:"OFFER_TTL" envDefault:"30s"`
}

package config

import "errors"

// ObservabilityConfig controls the optional New Relic integration.
type ObservabilityConfig struct {
	Enabled    bool   `koanf:"enabled"`
	LicenseKey string `koanf:"license_key"`

	// Filled in by Load; not read from the environment.
	ServiceName string `koanf:"-"`
	Environment string `koanf:"-"`
}

// DefaultObservabilityConfig returns the disabled default.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{Enabled: false}
}

// Validate checks that an enabled config carries a license key.
func (o *ObservabilityConfig) Validate() error {
	if o.Enabled && o.LicenseKey == "" {
		return errors.New("observability enabled but license_key is empty")
	}
	return nil
}

package observability

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/filadex/filadex/internal/config"
)

// NewApplication builds a New Relic application from the observability
// config. Returns nil when the integration is disabled.
func NewApplication(cfg *config.ObservabilityConfig) (*newrelic.Application, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}
	return newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		func(c *newrelic.Config) {
			c.CustomInsightsEvents.Enabled = true
		},
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"env": cfg.Environment}
		},
	)
}

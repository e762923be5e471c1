package oracle

import (
	"fmt"

	"harvester/internal/config"
	"harvester/internal/port"
)

// ProviderFactory is a function that creates a SuggestionOracle from a provider config.
type ProviderFactory func(cfg *config.OracleProviderConfig) (port.SuggestionOracle, error)

// registry of oracle provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an oracle provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewOracle creates a SuggestionOracle from a provider config using the registered factory.
func NewOracle(cfg *config.OracleProviderConfig) (port.SuggestionOracle, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown oracle provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

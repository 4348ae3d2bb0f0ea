// Package constants holds names shared between configuration and wiring.
package constants

// EnvProduction is the env.env value of deployed instances.
const EnvProduction = "production"

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Text generation providers
const (
	GeneratorProviderAnthropic = "anthropic"
)

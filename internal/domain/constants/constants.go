// Package constants collects string constants shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// Realtime event names.
const (
	EventAuth         = "auth"
	EventAuthOK       = "auth_ok"
	EventError        = "error"
	EventNotification = "notification"
)

// Package constants contains values shared across delivery and infrastructure layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers accepted by config.PubSubConfig.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event attribute keys carried on published messages.
const (
	AttrEventID   = "event_id"
	AttrTruckID   = "truck_id"
	AttrRequestID = "request_id"
)

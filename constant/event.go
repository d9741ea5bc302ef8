package constant

// User lifecycle event routing keys published to the user_events exchange
const (
	EventUserRegistered = "user.registered"
	EventUserUpdated    = "user.updated"
	EventUserDeleted    = "user.deleted"
)

package repository

// Storage keys. The fitconnect_ prefix scopes this app's entries within a
// shared store.
const (
	usersKey       = "fitconnect_users"
	currentUserKey = "fitconnect_currentUser"
	chatKeyPrefix  = "fitconnect_chat_"
)

package model

// Subscription records an email's opt-in flag for urgent-case
// notifications.  Entries are upserted by email: at most one record
// exists per address, reflecting the latest flag value.
type Subscription struct {
	Email  string `json:"email"`
	Urgent bool   `json:"urgent"`
}

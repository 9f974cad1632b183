// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// CaseApprovedEvent is published when an administrator approves a
// case whose urgency is URGENT or TRES_URGENT.  It carries enough
// information for the notification consumer to build alerts without
// re-reading the case from the store.
type CaseApprovedEvent struct {
	CaseID     string `json:"case_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Urgency    string `json:"urgency"`
	OwnerEmail string `json:"owner_email"`
	ApprovedAt string `json:"approved_at"`
}

package model

// Document is the full persisted state of the application: one JSON
// file on disk holding the three collections.  Every mutation loads
// the whole document, modifies it in memory and writes it back.
type Document struct {
	Users         []User         `json:"users"`
	Cases         []Case         `json:"cases"`
	Subscriptions []Subscription `json:"subscriptions"`
}

// Normalize replaces nil collections with empty slices so that a
// freshly decoded or zero-value document always serialises with all
// three collection keys present.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Cases == nil {
		d.Cases = []Case{}
	}
	if d.Subscriptions == nil {
		d.Subscriptions = []Subscription{}
	}
}

package model

// Case represents a humanitarian aid request submitted by an
// association.  A case starts in the PENDING state and becomes
// visible in the public catalog only after an administrator
// approves it.  Each record is stored as one entry in the `cases`
// collection of the JSON document store.
//
// Fields:
//  ID             - opaque identifier assigned by the server.
//  OwnerEmail     - email of the association that submitted the case.
//  Title          - short headline shown in the catalog.
//  Summary        - one or two sentence teaser.
//  Description    - full description of the need.
//  Category       - free-form category label (e.g. "Santé").
//  Urgency        - one of NORMAL, URGENT, TRES_URGENT.
//  Cha9a9aURL     - external donation link on the cha9a9a platform.
//  Photos         - ordered list of photo URLs.
//  GoalAmount     - funding goal (display only).
//  RaisedAmount   - amount raised so far (display only).
//  DonationsCount - number of donations (display only).
//  Status         - moderation state (PENDING, APPROVED, REJECTED).
//  Featured       - whether the case is highlighted on the home page.
//  LocationText   - optional free-text location.
//  Lat, Lng       - optional coordinates for map display.
//  CreatedAt      - RFC 3339 creation timestamp.
//  Views          - number of recorded detail views.
type Case struct {
	ID             string    `json:"id"`
	OwnerEmail     string    `json:"ownerEmail"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary,omitempty"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Urgency        string    `json:"urgency"`
	Cha9a9aURL     string    `json:"cha9a9aUrl"`
	Photos         []string  `json:"photos,omitempty"`
	GoalAmount     float64   `json:"goalAmount"`
	RaisedAmount   float64   `json:"raisedAmount"`
	DonationsCount int       `json:"donationsCount"`
	Status         string    `json:"status"`
	Featured       bool      `json:"featured"`
	LocationText   string    `json:"locationText,omitempty"`
	Lat            *float64  `json:"lat,omitempty"`
	Lng            *float64  `json:"lng,omitempty"`
	CreatedAt      string    `json:"createdAt"`
	Views          int       `json:"views"`
}

// Moderation states of a case.  The set is closed: a transition
// request naming any other value is rejected.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Urgency levels of a case.  TRES_URGENT outranks URGENT which
// outranks NORMAL when sorting the catalog by urgency.
const (
	UrgencyNormal     = "NORMAL"
	UrgencyUrgent     = "URGENT"
	UrgencyTresUrgent = "TRES_URGENT"
)

// ValidStatus reports whether s belongs to the fixed moderation set.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// UrgencyRank maps an urgency label to its sort ordinal.  Unknown or
// empty labels rank lowest, matching the catalog's default ordering.
func UrgencyRank(u string) int {
	switch u {
	case UrgencyTresUrgent:
		return 3
	case UrgencyUrgent:
		return 2
	default:
		return 1
	}
}

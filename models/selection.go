package models

// Selection is a customer's in-progress order draft. It lives in memory
// for the session only; nothing here is persisted.
type Selection struct {
	Category     string  `json:"category"`
	ServiceID    *string `json:"service_id"`
	Link         string  `json:"link"`
	Quantity     int64   `json:"quantity"`
	Acknowledged bool    `json:"acknowledged"`
}

// Notification kinds surfaced to the customer.
const (
	NoteInfo    = "info"
	NoteError   = "error"
	NoteSuccess = "success"
)

// Notification is the single transient message slot for a session.
type Notification struct {
	Kind string `json:"kind,omitempty"`
	Text string `json:"text,omitempty"`
}

// Empty reports whether no notification is currently live.
func (n Notification) Empty() bool {
	return n.Kind == "" && n.Text == ""
}

// DraftView is the read model returned by GET /draft.
type DraftView struct {
	Selection     Selection      `json:"selection"`
	ActiveService *ServiceRecord `json:"active_service,omitempty"`
	EstimatedCost string         `json:"estimated_cost"`
}

// Draft mutation request bodies. Category and service are allowed to be
// empty so the client can clear a pick; quantity travels as a JSON number
// and is clamped server-side.
type PickCategoryRequest struct {
	Category string `json:"category"`
}

type PickServiceRequest struct {
	ServiceID string `json:"service_id"`
}

type SetLinkRequest struct {
	Link string `json:"link"`
}

type SetQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

type AcknowledgeRequest struct {
	Acknowledged bool `json:"acknowledged"`
}

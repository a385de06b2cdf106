package audit

import "time"

// Event is an immutable, append-only audit record of an entity operation.
//
// Invariants:
// - Events are never updated or deleted.
// - company_id is required for tenancy isolation.
// - Actor and IP capture are best-effort; never block business flows on
//   audit failures.
type Event struct {
	ID        string `bson:"_id" json:"id"`
	CompanyID string `bson:"company_id" json:"company_id"`

	// ActorUserID is the authenticated user causing the event.
	ActorUserID string `bson:"actor_user_id,omitempty" json:"actor_user_id,omitempty"`
	ActorRole   string `bson:"actor_role,omitempty" json:"actor_role,omitempty"`

	// Entity names the record type acted on (customer, supplier, user, session).
	Entity string `bson:"entity" json:"entity"`
	// Action is one of create, read, update, delete, login, logout.
	Action string `bson:"action" json:"action"`

	Method string `bson:"method,omitempty" json:"method,omitempty"`
	Path   string `bson:"path,omitempty" json:"path,omitempty"`
	Status int    `bson:"status,omitempty" json:"status,omitempty"`

	// IPAddress should capture the original client IP when available.
	IPAddress string `bson:"ip_address,omitempty" json:"ip_address,omitempty"`

	// Message is a short human-readable description for internal ops.
	Message string `bson:"message,omitempty" json:"message,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
	ActionLogout = "logout"
)

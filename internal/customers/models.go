package customers

import "time"

// Customer is a company-scoped business contact.
// Tenancy invariant: every query filters by company_id; a customer id from
// another tenant behaves exactly like an unknown id.
type Customer struct {
	ID        string    `bson:"_id" json:"id"`
	CompanyID string    `bson:"company_id" json:"company_id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

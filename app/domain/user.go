package domain

// Accepted signup roles. The provider stores the role as a custom user
// attribute; the set can be overridden through configuration.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// DefaultRoles returns the built-in accepted role set
func DefaultRoles() []string {
	return []string{RolePatient, RoleDoctor}
}

// UserAttribute is a single (name, value) pair attached to a user record.
// Ordering is meaningful: the provider's order is preserved as-is.
type UserAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UserRecord is the provider-independent view of a stored user. Both
// timestamps are normalized to RFC3339 text regardless of how the provider
// represents them.
type UserRecord struct {
	Username       string          `json:"username"`
	Attributes     []UserAttribute `json:"user_attributes"`
	CreatedAt      string          `json:"user_created_at"`
	LastModifiedAt string          `json:"user_last_modified_at"`
	Status         string          `json:"user_status"`
	Enabled        bool            `json:"user_enabled"`
}

// Attribute returns the value of the named attribute, or "" when absent
func (u *UserRecord) Attribute(name string) string {
	for _, attr := range u.Attributes {
		if attr.Name == name {
			return attr.Value
		}
	}
	return ""
}

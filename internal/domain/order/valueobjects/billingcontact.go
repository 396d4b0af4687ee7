package valueobjects

import "strings"

// BillingContact carries the billing fields collected at checkout. Any
// field may be empty; empty fields render as empty segments downstream.
type BillingContact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Postcode  string
}

// FullName joins first and last name, tolerating either being empty.
func (b BillingContact) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(b.FirstName) + " " + strings.TrimSpace(b.LastName))
}

// FullAddress joins the address fields that are present, comma separated.
func (b BillingContact) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{b.Address, b.City, b.State, b.Postcode} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

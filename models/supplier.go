package models

// Supplier represents a product source
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// SupplierUpdate carries the fields of a partial supplier update.
type SupplierUpdate struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Apply merges the update into the supplier in place.
func (u SupplierUpdate) Apply(s *Supplier) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Contact != nil {
		s.Contact = *u.Contact
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
}

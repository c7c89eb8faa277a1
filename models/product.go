package models

import "time"

// Product represents a tracked stock item
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	CategoryID  string    `json:"categoryId"`
	SupplierID  string    `json:"supplierId"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Threshold   int       `json:"threshold"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductUpdate carries the fields of a partial product update.
// Nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	SupplierID  *string  `json:"supplierId,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Threshold   *int     `json:"threshold,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// Apply merges the update into the product in place.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.SKU != nil {
		p.SKU = *u.SKU
	}
	if u.CategoryID != nil {
		p.CategoryID = *u.CategoryID
	}
	if u.SupplierID != nil {
		p.SupplierID = *u.SupplierID
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.Threshold != nil {
		p.Threshold = *u.Threshold
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
}

package domain

import "time"

// Product is a piece of equipment, optionally owned by a customer and always
// belonging to exactly one category. Standalone products are catalog items not
// yet assigned to a customer. IsActive is a soft visibility flag; inactive
// products are excluded from "active" queries but never deleted.
type Product struct {
	Meta
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	SerialNumber  string     `json:"serialNumber,omitempty"`
	CategoryID    string     `json:"categoryId"`
	CustomerID    string     `json:"customerId,omitempty"`
	PurchaseDate  *time.Time `json:"purchaseDate,omitempty"`
	WarrantyUntil *time.Time `json:"warrantyUntil,omitempty"`
	IsStandalone  bool       `json:"isStandalone"`
	IsActive      bool       `json:"isActive"`
	Notes         string     `json:"notes,omitempty"`
}

// ProductCategory is a simple named taxonomy entry referenced by id from Product.
type ProductCategory struct {
	Meta
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

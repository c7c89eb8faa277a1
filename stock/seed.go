package stock

import (
	"time"

	"github.com/stockmaster/models"
)

// Built-in sample dataset used whenever a collection has never been
// persisted. Ids are fixed so the samples cross-reference each other.

func sampleProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:          "1",
			Name:        "Laptop",
			SKU:         "LAP-001",
			CategoryID:  "1",
			SupplierID:  "1",
			Price:       590000,
			Quantity:    15,
			Threshold:   5,
			Description: "High performance laptop",
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			SKU:         "SMART-001",
			CategoryID:  "1",
			SupplierID:  "2",
			Price:       325000,
			Quantity:    25,
			Threshold:   8,
			Description: "Latest generation smartphone",
			CreatedAt:   now,
		},
	}
}

func sampleCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Electronics", Description: "Electronic products and gadgets"},
		{ID: "2", Name: "Furniture", Description: "Office furniture and accessories"},
	}
}

func sampleSuppliers() []models.Supplier {
	return []models.Supplier{
		{
			ID:      "1",
			Name:    "TechPro",
			Contact: "John Smith",
			Email:   "contact@techpro.com",
			Phone:   "01 23 45 67 89",
			Address: "123 Tech Street, Paris",
		},
		{
			ID:      "2",
			Name:    "MobileTech",
			Contact: "Mary Martin",
			Email:   "info@mobiletech.com",
			Phone:   "01 98 76 54 32",
			Address: "456 Mobile Avenue, Lyon",
		},
	}
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:        "1",
			Type:      models.TransactionEntry,
			ProductID: "1",
			Quantity:  10,
			Date:      time.Now().AddDate(0, 0, -7),
			Notes:     "Regular restocking",
		},
		{
			ID:        "2",
			Type:      models.TransactionExit,
			ProductID: "1",
			Quantity:  2,
			Date:      time.Now().AddDate(0, 0, -5),
			Notes:     "Customer sale",
		},
	}
}

func defaultUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "Admin", Email: "admin@stockmaster.com", Role: models.RoleAdmin},
	}
}

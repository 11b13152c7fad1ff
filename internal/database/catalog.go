package database

import "puntos-store/internal/model"

// DefaultCatalog returns the products seeded into an empty store on first
// run. Prices are in pesos.
func DefaultCatalog() []model.Product {
	return []model.Product{
		{Name: "Laptop Dell Inspiron 15", Price: 2500000},
		{Name: "Mouse Logitech MX Master", Price: 250000},
		{Name: "Teclado Mecánico Razer", Price: 450000},
		{Name: "Monitor Samsung 24\"", Price: 800000},
		{Name: "Auriculares Sony WH-1000XM5", Price: 1200000},
		{Name: "Tablet Samsung Galaxy Tab", Price: 1500000},
		{Name: "Webcam Logitech C920", Price: 350000},
		{Name: "Disco Duro Externo 2TB", Price: 300000},
		{Name: "Impresora HP LaserJet", Price: 900000},
		{Name: "Router WiFi 6 TP-Link", Price: 400000},
	}
}

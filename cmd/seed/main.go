package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/repository"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/product"
	"github.com/kiranakonnect/kirana-konnect/internal/infrastructure/database"
)

type seedProduct struct {
	name          string
	category      string
	unit          string
	price         float64
	costPrice     float64
	pricePerKg    float64
	isWeightBased bool
	stock         int
	reorderLevel  int
	expiryDays    int // 0 means no expiry date
}

type seedCustomer struct {
	name    string
	phone   string
	address string
}

var sampleProducts = []seedProduct{
	{name: "Aashirvaad Atta 5kg", category: "Grocery", unit: "bag", price: 280, costPrice: 245, stock: 24, reorderLevel: 10},
	{name: "Basmati Rice", category: "Grocery", unit: "kg", pricePerKg: 120, costPrice: 95, isWeightBased: true, stock: 50, reorderLevel: 15},
	{name: "Toor Dal", category: "Grocery", unit: "kg", pricePerKg: 160, costPrice: 135, isWeightBased: true, stock: 30, reorderLevel: 10},
	{name: "Coconut Oil 1L", category: "Oil", unit: "bottle", price: 220, costPrice: 185, stock: 18, reorderLevel: 8},
	{name: "Tata Salt 1kg", category: "Grocery", unit: "packet", price: 28, costPrice: 22, stock: 60, reorderLevel: 20},
	{name: "Amul Butter 500g", category: "Dairy", unit: "packet", price: 275, costPrice: 250, stock: 12, reorderLevel: 6, expiryDays: 20},
	{name: "Parle-G Biscuits", category: "Snacks", unit: "packet", price: 10, costPrice: 8, stock: 100, reorderLevel: 30, expiryDays: 90},
	{name: "Sugar", category: "Grocery", unit: "kg", pricePerKg: 45, costPrice: 38, isWeightBased: true, stock: 40, reorderLevel: 12},
	{name: "Red Label Tea 250g", category: "Beverages", unit: "packet", price: 145, costPrice: 120, stock: 15, reorderLevel: 5},
	{name: "Maggi Noodles", category: "Snacks", unit: "packet", price: 14, costPrice: 11, stock: 80, reorderLevel: 25, expiryDays: 5},
}

var sampleCustomers = []seedCustomer{
	{name: "Rajesh Kumar", phone: "9876543210", address: "12 Gandhi Road"},
	{name: "Priya Sharma", phone: "9812345678", address: "45 Nehru Street"},
	{name: "Amit Patel", phone: "9898989898", address: "7 Market Lane"},
	{name: "Sunita Devi", phone: "9765432109", address: "22 Temple Road"},
}

func main() {
	// Environment variables from .env when present
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewPostgresPool(ctx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	for _, sp := range sampleProducts {
		p, err := product.NewProduct(sp.name, sp.price)
		if err != nil {
			log.Fatalf("invalid sample product %q: %v", sp.name, err)
		}
		p.Category = sp.category
		p.Unit = sp.unit
		p.CostPrice = sp.costPrice
		p.PricePerKg = sp.pricePerKg
		p.IsWeightBased = sp.isWeightBased
		p.StockQuantity = sp.stock
		p.ReorderLevel = sp.reorderLevel
		if sp.expiryDays > 0 {
			expiry := time.Now().AddDate(0, 0, sp.expiryDays)
			p.ExpiryDate = &expiry
		}

		if err := productRepo.Create(ctx, p); err != nil {
			log.Fatalf("failed to seed product %q: %v", sp.name, err)
		}
		log.Printf("seeded product %s (id %d)", p.Name, p.ID)
	}

	for _, sc := range sampleCustomers {
		c, err := customer.NewCustomer(sc.name, sc.phone, sc.address, "", "")
		if err != nil {
			log.Fatalf("invalid sample customer %q: %v", sc.name, err)
		}

		if err := customerRepo.Create(ctx, c); err != nil {
			log.Fatalf("failed to seed customer %q: %v", sc.name, err)
		}
		log.Printf("seeded customer %s (id %d)", c.Name, c.ID)
	}

	log.Println("Sample data seeded successfully")
}

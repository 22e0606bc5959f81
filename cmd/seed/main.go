package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

type seedItem struct {
	name      string
	category  string
	price     int64 // cents
	cost      int64 // cents, 0 = unknown
	popular   bool  // sells in most orders
	currently bool
}

var demoMenu = []seedItem{
	{"Margherita Pizza", "Pizza", 1250, 380, true, true},
	{"Diavola Pizza", "Pizza", 1450, 430, true, true},
	{"Quattro Formaggi", "Pizza", 1550, 520, false, true},
	{"Truffle Pizza", "Pizza", 2250, 980, false, true},
	{"Carbonara", "Pasta", 1350, 310, true, true},
	{"Lasagna", "Pasta", 1400, 460, true, true},
	{"Seafood Linguine", "Pasta", 1850, 0, false, true},
	{"Caesar Salad", "Salads", 950, 240, false, true},
	{"Caprese Salad", "Salads", 900, 0, false, true},
	{"Tiramisu", "Desserts", 650, 180, true, true},
	{"Panna Cotta", "Desserts", 600, 150, false, true},
	{"Octopus Special", "Mains", 2400, 0, false, false},
}

// main seeds a demo restaurant with an owner account, a menu card and
// eight weeks of synthetic ticket history so the analytics endpoints have
// something to chew on.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PLATEWISE - Demo Restaurant Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	email, password, restaurantName := getOwnerCredentials()

	var existing models.User
	if err := config.DashboardGorm.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	authService := services.GetAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	restaurant := models.Restaurant{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Name:     restaurantName,
		SlugName: "demo-trattoria",
		Currency: "EUR",
		Timezone: "Europe/Rome",
	}
	owner := models.User{
		ID:           uuid.Must(uuid.NewV7()).String(),
		RestaurantID: restaurant.ID,
		Email:        email,
		Name:         "Demo Owner",
		PasswordHash: passwordHash,
		Role:         models.RoleOwner,
	}

	items := buildMenuItems(restaurant.ID)
	orders, orderItems := buildSalesHistory(restaurant.ID, items)

	err = config.DashboardGorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}
		if err := tx.CreateInBatches(items, 100).Error; err != nil {
			return err
		}
		if err := tx.CreateInBatches(orders, 500).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(orderItems, 500).Error
	})
	if err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Restaurant Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Restaurant: %s (%s)\n", restaurant.Name, restaurant.ID)
	fmt.Printf("Owner:      %s\n", owner.Email)
	fmt.Printf("Menu items: %d\n", len(items))
	fmt.Printf("Orders:     %d (%d line items)\n", len(orders), len(orderItems))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. Open GET /api/v1/analytics/menu-engineering to see the quadrants")
	fmt.Println()
}

func buildMenuItems(restaurantID string) []models.MenuItem {
	introduced := time.Now().AddDate(0, -8, 0)
	items := make([]models.MenuItem, 0, len(demoMenu))
	for _, d := range demoMenu {
		item := models.MenuItem{
			ID:            uuid.Must(uuid.NewV7()).String(),
			RestaurantID:  restaurantID,
			Name:          d.name,
			Category:      d.category,
			PriceCents:    d.price,
			IsCoreMenu:    true,
			IsCurrentMenu: d.currently,
			IntroducedAt:  &introduced,
		}
		if d.cost > 0 {
			cost := d.cost
			item.CostCents = &cost
			pct := float64(cost) / float64(d.price) * 100
			item.CostPercent = &pct
		}
		items = append(items, item)
	}
	return items
}

// buildSalesHistory fabricates eight weeks of tickets ending yesterday.
// Popular items land in roughly two thirds of orders, the rest are rolled
// per order, so the quadrant report comes out with a believable spread.
func buildSalesHistory(restaurantID string, items []models.MenuItem) ([]models.Order, []models.OrderItem) {
	rng := rand.New(rand.NewSource(42))
	var orders []models.Order
	var lines []models.OrderItem

	start := time.Now().AddDate(0, 0, -56).Truncate(24 * time.Hour)
	receipt := 1000
	for day := 0; day < 56; day++ {
		date := start.AddDate(0, 0, day)
		ordersToday := 18 + rng.Intn(14)
		if wd := date.Weekday(); wd == time.Friday || wd == time.Saturday {
			ordersToday += 12
		}
		for n := 0; n < ordersToday; n++ {
			receipt++
			orderedAt := date.Add(time.Duration(11+rng.Intn(11)) * time.Hour).Add(time.Duration(rng.Intn(60)) * time.Minute)
			order := models.Order{
				ID:           uuid.Must(uuid.NewV7()).String(),
				RestaurantID: restaurantID,
				ReceiptRef:   fmt.Sprintf("SEED-%d", receipt),
				OrderedAt:    orderedAt,
				ImportJobID:  "seed",
			}
			for i, d := range demoMenu {
				if !d.currently {
					continue
				}
				chance := 12
				if d.popular {
					chance = 65
				}
				if rng.Intn(100) >= chance {
					continue
				}
				qty := 1 + rng.Intn(2)
				line := models.OrderItem{
					ID:             uuid.Must(uuid.NewV7()).String(),
					OrderID:        order.ID,
					RestaurantID:   restaurantID,
					ItemName:       items[i].Name,
					Category:       items[i].Category,
					Quantity:       qty,
					UnitPriceCents: items[i].PriceCents,
					SubtotalCents:  items[i].PriceCents * int64(qty),
					OrderedAt:      orderedAt,
				}
				order.TotalCents += line.SubtotalCents
				lines = append(lines, line)
			}
			if order.TotalCents == 0 {
				continue // empty roll, skip the ticket
			}
			orders = append(orders, order)
		}
	}
	return orders, lines
}

// getOwnerCredentials prompts for the demo owner account details
func getOwnerCredentials() (email, password, restaurantName string) {
	fmt.Println("Enter Demo Owner Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if len(password) >= 8 {
			break
		}
		fmt.Println("❌ Password must be at least 8 characters")
	}

	fmt.Print("Restaurant name [Demo Trattoria]: ")
	fmt.Scanln(&restaurantName)
	if restaurantName == "" {
		restaurantName = "Demo Trattoria"
	}

	return email, password, restaurantName
}

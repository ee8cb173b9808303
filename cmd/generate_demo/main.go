// Command generate_demo creates a demo database with a sample restaurant:
// one manager, a couple of employees, a buffet line of items and pots, and a
// week of production/waste entries.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/buffetops/buffet/internal/auth"
	"github.com/buffetops/buffet/internal/config"
	"github.com/buffetops/buffet/internal/database"
	"github.com/buffetops/buffet/internal/database/users"
	"github.com/buffetops/buffet/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// Demo credentials, printed at the end of the run.
const (
	managerEmail = "manager@demo.local"
	demoPassword = "demopassword"
)

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	authService := auth.NewService(users.NewRepository(db.DB), config.Auth{BcryptCost: auth.DefaultBcryptCost})

	manager, err := authService.RegisterManager(managerEmail, demoPassword)
	if err != nil {
		log.Fatalf("Failed to create demo manager: %v", err)
	}

	var staff []*entities.User
	for _, email := range []string{"alice@demo.local", "bob@demo.local"} {
		employee, err := authService.RegisterEmployee(manager.ID, email, demoPassword)
		if err != nil {
			log.Fatalf("Failed to create demo employee %s: %v", email, err)
		}
		staff = append(staff, employee)
	}

	items := createItems(db, manager.ID)
	pots := createPots(db, manager.ID)
	entries := createLogs(db, staff, items, pots)

	log.Printf("Created %d items, %d pots, %d log entries", len(items), len(pots), entries)
	log.Printf("Demo database generated successfully!")
	log.Printf("Sign in as %s / %s", managerEmail, demoPassword)
}

func createItems(db *database.Database, managerID string) []entities.Item {
	seed := []entities.Item{
		{Name: "Fried Rice", Description: "Wok station staple", COGS: 1.80},
		{Name: "Sweet and Sour Pork", Description: "", COGS: 3.20},
		{Name: "Spring Rolls", Description: "Vegetable filling", COGS: 0.95},
		{Name: "Hot and Sour Soup", Description: "", COGS: 1.10},
		{Name: "Chow Mein", Description: "Egg noodles", COGS: 2.10},
	}

	var items []entities.Item
	for _, item := range seed {
		item.UserID = managerID
		if err := db.DB.Create(&item).Error; err != nil {
			log.Printf("Failed to create item %s: %v", item.Name, err)
			continue
		}
		items = append(items, item)
	}
	return items
}

func createPots(db *database.Database, managerID string) []entities.Pot {
	seed := []entities.Pot{
		{Name: "Chafing Dish A", Capacity: 8, Weight: 1.4},
		{Name: "Chafing Dish B", Capacity: 8, Weight: 1.4},
		{Name: "Soup Kettle", Capacity: 10, Weight: 2.1},
		{Name: "Half Pan", Capacity: 4, Weight: 0.9},
	}

	var pots []entities.Pot
	for _, pot := range seed {
		pot.UserID = managerID
		if err := db.DB.Create(&pot).Error; err != nil {
			log.Printf("Failed to create pot %s: %v", pot.Name, err)
			continue
		}
		pots = append(pots, pot)
	}
	return pots
}

// createLogs spreads a week of entries across the staff. Every shift
// produces food; roughly a third of the weighings record waste at closing.
func createLogs(db *database.Database, staff []*entities.User, items []entities.Item, pots []entities.Pot) int {
	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	count := 0
	for day := 0; day < 7; day++ {
		for _, item := range items {
			user := staff[rng.Intn(len(staff))]
			pot := pots[rng.Intn(len(pots))]

			entry := entities.Log{
				UserID:    user.ID,
				ItemID:    item.ID,
				PotID:     pot.ID,
				Type:      entities.LogTypeProduction,
				Weight:    2 + rng.Float64()*4,
				CreatedAt: now.AddDate(0, 0, -day),
			}
			if err := db.DB.Create(&entry).Error; err != nil {
				log.Printf("Failed to create log entry: %v", err)
				continue
			}
			count++

			if rng.Intn(3) == 0 {
				waste := entities.Log{
					UserID:    user.ID,
					ItemID:    item.ID,
					PotID:     pot.ID,
					Type:      entities.LogTypeWaste,
					Weight:    0.2 + rng.Float64()*1.5,
					CreatedAt: now.AddDate(0, 0, -day),
				}
				if err := db.DB.Create(&waste).Error; err != nil {
					log.Printf("Failed to create waste entry: %v", err)
					continue
				}
				count++
			}
		}
	}
	return count
}

package logs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/buffetops/buffet/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_logs_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Item{}, &entities.Pot{}, &entities.Log{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createItem(t *testing.T, db *gorm.DB, name string) *entities.Item {
	t.Helper()
	item := &entities.Item{UserID: "manager-1", Name: name}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestRepository_CreateLog(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	item := createItem(t, db, "Noodles")

	entry, err := repo.CreateLog(&entities.Log{
		UserID: "employee-1",
		ItemID: item.ID,
		Type:   entities.LogTypeProduction,
		Weight: 2.5,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, entities.LogTypeProduction, entry.Type)
	assert.Equal(t, 2.5, entry.Weight)
}

func TestRepository_GetLogsByUser(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	item := createItem(t, db, "Noodles")

	for _, weight := range []float64{1, 2} {
		_, err := repo.CreateLog(&entities.Log{
			UserID: "employee-1",
			ItemID: item.ID,
			Type:   entities.LogTypeProduction,
			Weight: weight,
		})
		require.NoError(t, err)
	}
	_, err := repo.CreateLog(&entities.Log{
		UserID: "employee-2",
		ItemID: item.ID,
		Type:   entities.LogTypeWaste,
		Weight: 3,
	})
	require.NoError(t, err)

	entries, err := repo.GetLogsByUser("employee-1")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "employee-1", entry.UserID)
	}
}

func TestRepository_TotalWeight(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	item := createItem(t, db, "Noodles")

	seed := []struct {
		logType entities.LogType
		weight  float64
	}{
		{entities.LogTypeProduction, 2},
		{entities.LogTypeProduction, 3},
		{entities.LogTypeWaste, 0.5},
	}
	for _, s := range seed {
		_, err := repo.CreateLog(&entities.Log{
			UserID: "employee-1",
			ItemID: item.ID,
			Type:   s.logType,
			Weight: s.weight,
		})
		require.NoError(t, err)
	}

	production, err := repo.TotalWeight(entities.LogTypeProduction)
	require.NoError(t, err)
	assert.Equal(t, 5.0, production)

	waste, err := repo.TotalWeight(entities.LogTypeWaste)
	require.NoError(t, err)
	assert.Equal(t, 0.5, waste)
}

func TestRepository_TotalWeight_NoEntries(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	total, err := repo.TotalWeight(entities.LogTypeProduction)

	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestRepository_GetItemStats(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	noodles := createItem(t, db, "Noodles")
	soup := createItem(t, db, "Soup")
	// No entries ever recorded against this one
	createItem(t, db, "Dumplings")

	seed := []struct {
		itemID  string
		logType entities.LogType
		weight  float64
	}{
		{noodles.ID, entities.LogTypeProduction, 4},
		{noodles.ID, entities.LogTypeProduction, 1},
		{noodles.ID, entities.LogTypeWaste, 0.5},
		{soup.ID, entities.LogTypeWaste, 2},
	}
	for _, s := range seed {
		_, err := repo.CreateLog(&entities.Log{
			UserID: "employee-1",
			ItemID: s.itemID,
			Type:   s.logType,
			Weight: s.weight,
		})
		require.NoError(t, err)
	}

	stats, err := repo.GetItemStats()

	require.NoError(t, err)
	require.Len(t, stats, 3)

	// Ordered by item name
	assert.Equal(t, "Dumplings", stats[0].Name)
	assert.Equal(t, 0.0, stats[0].Production)
	assert.Equal(t, 0.0, stats[0].Waste)

	assert.Equal(t, "Noodles", stats[1].Name)
	assert.Equal(t, noodles.ID, stats[1].ItemID)
	assert.Equal(t, 5.0, stats[1].Production)
	assert.Equal(t, 0.5, stats[1].Waste)

	assert.Equal(t, "Soup", stats[2].Name)
	assert.Equal(t, 0.0, stats[2].Production)
	assert.Equal(t, 2.0, stats[2].Waste)
}

func TestRepository_GetItemStats_DeletedItemDropsOut(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	item := createItem(t, db, "Noodles")
	_, err := repo.CreateLog(&entities.Log{
		UserID: "employee-1",
		ItemID: item.ID,
		Type:   entities.LogTypeProduction,
		Weight: 4,
	})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&entities.Item{}, "id = ?", item.ID).Error)

	// The entry itself survives and still counts in global totals
	total, err := repo.TotalWeight(entities.LogTypeProduction)
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)

	// But the per-item breakdown no longer lists the item
	stats, err := repo.GetItemStats()
	require.NoError(t, err)
	assert.Empty(t, stats)
}

package items

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

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_items_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Item{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateItem(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	item, err := repo.CreateItem(&entities.Item{
		UserID:      "manager-1",
		Name:        "Fried Rice",
		Description: "Wok station",
		COGS:        2.5,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Fried Rice", item.Name)
	assert.Equal(t, 2.5, item.COGS)
}

func TestRepository_GetItemsByOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, name := range []string{"Noodles", "Dumplings"} {
		_, err := repo.CreateItem(&entities.Item{UserID: "manager-1", Name: name})
		require.NoError(t, err)
	}
	_, err := repo.CreateItem(&entities.Item{UserID: "manager-2", Name: "Soup"})
	require.NoError(t, err)

	items, err := repo.GetItemsByOwner("manager-1")

	require.NoError(t, err)
	require.Len(t, items, 2)
	// Sorted by name
	assert.Equal(t, "Dumplings", items[0].Name)
	assert.Equal(t, "Noodles", items[1].Name)
}

func TestRepository_GetAllItems(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateItem(&entities.Item{UserID: "manager-1", Name: "Noodles"})
	require.NoError(t, err)
	_, err = repo.CreateItem(&entities.Item{UserID: "manager-2", Name: "Soup"})
	require.NoError(t, err)

	items, err := repo.GetAllItems()

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRepository_UpdateItem(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateItem(&entities.Item{UserID: "manager-1", Name: "Noodles", COGS: 1})
	require.NoError(t, err)

	err = repo.UpdateItem("manager-1", created.ID, "Udon", "Thick noodles", 1.8)
	require.NoError(t, err)

	items, err := repo.GetItemsByOwner("manager-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Udon", items[0].Name)
	assert.Equal(t, "Thick noodles", items[0].Description)
	assert.Equal(t, 1.8, items[0].COGS)
}

func TestRepository_UpdateItem_WrongOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateItem(&entities.Item{UserID: "manager-1", Name: "Noodles"})
	require.NoError(t, err)

	err = repo.UpdateItem("manager-2", created.ID, "Udon", "", 0)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_DeleteItem(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateItem(&entities.Item{UserID: "manager-1", Name: "Noodles"})
	require.NoError(t, err)

	err = repo.DeleteItem("manager-1", created.ID)
	require.NoError(t, err)

	items, err := repo.GetItemsByOwner("manager-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepository_DeleteItem_WrongOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateItem(&entities.Item{UserID: "manager-1", Name: "Noodles"})
	require.NoError(t, err)

	err = repo.DeleteItem("manager-2", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Still there for the owner
	items, err := repo.GetItemsByOwner("manager-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

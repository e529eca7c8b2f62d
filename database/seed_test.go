package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/config"
	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func TestMigrateAndSeedAdminIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: "securepassword",
	}

	// Run init twice, as on two process starts
	assert.NoError(t, Migrate(db))
	assert.NoError(t, SeedAdmin(db, cfg))
	assert.NoError(t, Migrate(db))
	assert.NoError(t, SeedAdmin(db, cfg))

	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	assert.EqualValues(t, 1, count)

	var admin models.User
	db.Where("username = ?", "admin").First(&admin)
	assert.Equal(t, "admin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("securepassword")))
}

func TestMigrateCreatesAllTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))

	for _, model := range []interface{}{
		&models.User{},
		&models.Table{},
		&models.Reservation{},
		&models.Menu{},
		&models.Review{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

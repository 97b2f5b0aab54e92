// seed-admin creates the platform collective and the admin console user.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//	ADMIN_USERNAME=admin ADMIN_PASSWORD=... go run ./cmd/seed-admin
package main

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
	"github.com/collectivehq/platform_backend/utils"
)

func main() {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_PASSWORD is required")
		os.Exit(1)
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	if err := models.MigrateTable(db); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err.Error())
		os.Exit(1)
	}

	ctx := utils.SetUserIdInContext(context.Background(), 0)
	ctx = utils.SetUserNameInContext(ctx, "System")
	ctx = utils.SetSkipTenantScopeInContext(ctx, true)

	if err := seedPlatformCollective(ctx, db); err != nil {
		fmt.Fprintln(os.Stderr, "seed platform collective:", err.Error())
		os.Exit(1)
	}
	if err := seedAdminUser(ctx, db, adminUsername, adminPassword); err != nil {
		fmt.Fprintln(os.Stderr, "seed admin user:", err.Error())
		os.Exit(1)
	}

	fmt.Println("seed-admin: done")
}

// seedPlatformCollective ensures the platform collective row exists with the
// well-known id. Fees and debts accrue against this collective.
func seedPlatformCollective(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Collective{}).
		Where("id = ?", models.PlatformCollectiveId).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("platform collective already exists")
		return nil
	}

	platform := models.Collective{
		ID:             models.PlatformCollectiveId,
		CollectiveType: models.CollectiveTypeOrganization,
		Name:           "Platform",
		Slug:           "platform",
		Currency:       "USD",
		IsHost:         utils.NewTrue(),
		IsActive:       utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&platform).Error; err != nil {
		return err
	}
	fmt.Println("created platform collective id =", platform.ID)
	return nil
}

func seedAdminUser(ctx context.Context, db *gorm.DB, username string, password string) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("admin user already exists:", username)
		return nil
	}

	user, err := models.CreateUser(ctx, &models.NewUser{
		Username: username,
		Name:     "Platform Admin",
		Password: password,
		Role:     models.UserRoleAdmin,
	})
	if err != nil {
		return err
	}
	fmt.Println("created admin user id =", user.ID)
	return nil
}

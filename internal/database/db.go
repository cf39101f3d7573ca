package database

import (
	"fmt"

	"vaulterp-backend/internal/config"
	"vaulterp-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the configured Postgres instance. The handle is passed
// to every handler constructor; there is no package-global connection.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Office{},
		&models.User{},
		&models.Employee{},
		&models.Operation{},
		&models.EmployeeOperation{},
		&models.Shift{},
		&models.EmployeeShift{},
		&models.Asset{},
		&models.AssetOperation{},
		&models.Category{},
		&models.Item{},
		&models.Vendor{},
		&models.RateCard{},
		&models.Stock{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.GoodsReceipt{},
		&models.Party{},
		&models.Product{},
		&models.WorkOrder{},
		&models.WorkOrderProduct{},
		&models.JobCard{},
		&models.PlanningSheet{},
	)
}

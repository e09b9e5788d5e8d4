package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/config"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.CatalogItem{},
		&models.Appointment{},
		&models.Transaction{},
		&models.CreditSale{},
		&models.Installment{},
		&models.Expense{},
		&models.ExpenseCategory{},
		&models.SystemSettings{},
		&models.AuditLog{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}

	// Linha única de configurações, criada se ainda não existir.
	settings := models.DefaultSystemSettings()
	db.Where("id = ?", models.SystemSettingsRowID).FirstOrCreate(&settings)

	return db
}

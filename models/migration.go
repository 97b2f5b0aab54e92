package models

import (
	"gorm.io/gorm"
)

// MigrateTable runs the schema migrations. Order matters for foreign keys.
func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Collective{},
		&Member{},
		&MemberInvitation{},
		&Tier{},
		&PaymentMethod{},
		&PayoutMethod{},
		&Order{},
		&Expense{},
		&Transaction{},
		&TransactionSettlement{},
		&PubSubMessageRecord{},
		&IdempotencyKey{},
		&Activity{},
	)
}

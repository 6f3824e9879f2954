package model

import "gorm.io/gorm"

// AutoMigrate migrates every clinic table in dependency order.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Doctor{},
		&Pet{},
		&Appointment{},
		&MedicalRecord{},
	)
}

// DropAll drops every clinic table, dependents first.
func DropAll(db *gorm.DB) error {
	for _, table := range []interface{}{
		&MedicalRecord{},
		&Appointment{},
		&Pet{},
		&Doctor{},
		&User{},
	} {
		if err := db.Migrator().DropTable(table); err != nil {
			return err
		}
	}
	return nil
}

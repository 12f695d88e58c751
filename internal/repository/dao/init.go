package dao

import "github.com/ego-component/egorm"

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&User{},
		&Contact{},
		&ContactLabel{},
		&ContactLabelMapping{},
		&InventoryItem{},
		&CalendarEvent{},
		&AvailabilityStatus{},
		&CateringProfile{},
		&Message{},
	)
}

package app

import (
	"github.com/markshop/markshop/config"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// AppContext combines the provider interfaces for full application
// context. Services should depend on specific providers or this
// combined interface
type AppContext interface {
	DBProvider
	ConfigProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}

package config

// GormEngine selects the database driver the daemon opens.
type GormEngine string

const (
	// EngineMySQL opens the database with the gorm mysql driver.
	EngineMySQL GormEngine = "mysql"
	// EnginePostgres opens the database with the gorm postgres driver.
	EnginePostgres GormEngine = "postgres"
	// EngineSQLite opens the database with the pure-Go sqlite driver.
	EngineSQLite GormEngine = "sqlite"
)

// Valid reports whether the engine is one of the supported drivers.
func (e GormEngine) Valid() bool {
	return e == EngineMySQL || e == EnginePostgres || e == EngineSQLite
}

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine GormEngine
}

package database

import (
	"fmt"
	"sync"

	"cargoflow/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

var (
	connMu sync.Mutex
	conn   *gorm.DB
)

// Open connects with the driver selected by DB_DRIVER (mysql, postgres or
// mssql) and caches the connection for the whole process.
func Open() (*gorm.DB, error) {
	connMu.Lock()
	defer connMu.Unlock()

	if conn != nil {
		return conn, nil
	}

	db, err := openDriver(config.DBName)
	if err != nil {
		return nil, err
	}
	conn = db
	return conn, nil
}

// GetDBConnection returns the cached process connection; Open must have been
// called at startup.
func GetDBConnection() (*gorm.DB, error) {
	connMu.Lock()
	defer connMu.Unlock()
	if conn == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}
	return conn, nil
}

func openDriver(dbName string) (*gorm.DB, error) {
	switch config.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return gorm.Open(sqlserver.Open(dsn), &gorm.Config{})
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
}

// EnsureDatabaseExists creates the application database when missing. MySQL
// and SQL Server allow this through their maintenance databases; on postgres
// a failed probe connection is reported to the operator instead.
func EnsureDatabaseExists(dbName string) error {
	switch config.DBDriver {
	case "mysql":
		admin, err := openDriver("mysql")
		if err != nil {
			return err
		}
		return admin.Exec("CREATE DATABASE IF NOT EXISTS " + dbName).Error
	case "mssql":
		admin, err := openDriver("master")
		if err != nil {
			return err
		}
		return admin.Exec(
			"IF NOT EXISTS (SELECT name FROM sys.databases WHERE name = ?) CREATE DATABASE " + dbName,
			dbName).Error
	default:
		if _, err := openDriver(dbName); err != nil {
			return fmt.Errorf("database %s not reachable, create it first: %w", dbName, err)
		}
		return nil
	}
}

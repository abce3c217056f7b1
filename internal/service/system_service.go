package service

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/database"
	"github.com/michaeljamescarne/property-fee-calculator-sub002/internal/version"
)

// VersionInfo describes the running application and its database schema.
type VersionInfo struct {
	AppVersion string
	DbVersion  int64
}

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version and the applied migration version.
func (s *SystemService) CheckVersion() (VersionInfo, error) {
	dbVersion, err := goose.GetDBVersion(s.db)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("failed to read schema version: %w", err)
	}
	return VersionInfo{
		AppVersion: version.Version,
		DbVersion:  dbVersion,
	}, nil
}

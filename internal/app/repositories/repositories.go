// Package repositories is the exclusive owner of durable state. All other
// components access records through it.
package repositories

import (
	"github.com/Mikailhassan/bursary-aden/internal/db"
)

// Repositories bundles all repository instances
type Repositories struct {
	UserRepository      *UserRepository
	ApplicantRepository *ApplicantRepository
	BursaryRepository   *BursaryApplicationRepository
}

// NewRepositories creates all repositories over one database handle
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(database),
		ApplicantRepository: NewApplicantRepository(database),
		BursaryRepository:   NewBursaryApplicationRepository(database),
	}
}

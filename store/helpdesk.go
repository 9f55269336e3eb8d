package store

import (
	"github.com/jinzhu/gorm"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// HelpDeskCore is the relational datastore of registered accounts
type HelpDeskCore interface {
	Ping() error

	// Account
	CreateAccount(uid, email, name string, profilePictureURL *string, emailVerified bool) (*schema.Account, error)
	GetAccount(uid string) (*schema.Account, error)
	UpdateAccount(uid string, fields map[string]interface{}) (*schema.Account, error)
	MarkEmailVerified(uid string) error
	TouchLastSeen(uid string) error
	DeleteAccount(uid string) error
}

// HelpDeskStore is an implementation of HelpDeskCore
type HelpDeskStore struct {
	ormDB *gorm.DB
}

func NewHelpDeskStore(ormDB *gorm.DB) *HelpDeskStore {
	return &HelpDeskStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *HelpDeskStore) Ping() error {
	return s.ormDB.DB().Ping()
}

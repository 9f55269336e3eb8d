package store

import (
	"errors"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/helpdesk-community/helpdesk-api/schema"
)

// updatableAccountFields are the columns an account owner may change
var updatableAccountFields = map[string]bool{
	"name":                true,
	"profile_picture_url": true,
}

// CreateAccount registers an identity provider user
func (s *HelpDeskStore) CreateAccount(uid, email, name string, profilePictureURL *string, emailVerified bool) (*schema.Account, error) {
	a := schema.Account{
		ID:                uid,
		Email:             email,
		Name:              name,
		ProfilePictureURL: profilePictureURL,
		EmailVerified:     emailVerified,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns the account of a given uid
func (s *HelpDeskStore) GetAccount(uid string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", uid).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAccount changes the owner editable fields of an account. Unknown
// fields are ignored.
func (s *HelpDeskStore) UpdateAccount(uid string, fields map[string]interface{}) (*schema.Account, error) {
	values := make(map[string]interface{})
	for k, v := range fields {
		if updatableAccountFields[k] {
			values[k] = v
		}
	}

	if len(values) > 0 {
		result := s.ormDB.Model(schema.Account{}).Where("id = ?", uid).Updates(values)
		if result.Error != nil {
			return nil, result.Error
		}

		if result.RowsAffected == 0 {
			return nil, ErrAccountNotFound
		}
	}

	return s.GetAccount(uid)
}

// MarkEmailVerified records that the identity provider verified the email
func (s *HelpDeskStore) MarkEmailVerified(uid string) error {
	result := s.ormDB.Model(schema.Account{}).Where("id = ?", uid).Update("email_verified", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// TouchLastSeen sets the last seen time without bumping updated_at
func (s *HelpDeskStore) TouchLastSeen(uid string) error {
	return s.ormDB.Model(schema.Account{}).Where("id = ?", uid).
		UpdateColumn("last_seen_at", time.Now().UTC()).Error
}

// DeleteAccount removes an account from our system permanently
func (s *HelpDeskStore) DeleteAccount(uid string) error {
	result := s.ormDB.Delete(schema.Account{}, "id = ?", uid)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

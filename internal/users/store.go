package users

import "gorm.io/gorm"

// Store is the persistence boundary for users. Lookups return
// gorm.ErrRecordNotFound when no row matches, regardless of backing
// implementation, so handlers can errors.Is against a single sentinel.
type Store interface {
	Create(u *User) error
	ByID(id uint) (*User, error)
	ByEmail(email string) (*User, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Create(u *User) error {
	return s.db.Create(u).Error
}

func (s *gormStore) ByID(id uint) (*User, error) {
	var u User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormStore) ByEmail(email string) (*User, error) {
	var u User
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

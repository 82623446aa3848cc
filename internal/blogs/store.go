package blogs

import "gorm.io/gorm"

// Store is the persistence boundary for blogs. Lookups load the author
// alongside the record and return gorm.ErrRecordNotFound when nothing
// matches.
type Store interface {
	Create(b *Blog) error
	ByID(id uint) (*Blog, error)
	BySlug(slug string) (*Blog, error)
	List(offset, limit int) ([]Blog, int64, error)
	Update(b *Blog) error
	Delete(b *Blog) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Create(b *Blog) error {
	if err := s.db.Create(b).Error; err != nil {
		return err
	}
	// reload so the response carries the author, not just the id
	return s.db.Preload("Author").First(b, b.ID).Error
}

func (s *gormStore) ByID(id uint) (*Blog, error) {
	var b Blog
	if err := s.db.Preload("Author").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *gormStore) BySlug(slug string) (*Blog, error) {
	var b Blog
	err := s.db.Preload("Author").Where("slug = ?", slug).
		Order("created_at DESC").First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *gormStore) List(offset, limit int) ([]Blog, int64, error) {
	var total int64
	if err := s.db.Model(&Blog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Blog
	err := s.db.Preload("Author").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *gormStore) Update(b *Blog) error {
	// the loaded Author association stays untouched on save
	return s.db.Omit("Author").Save(b).Error
}

func (s *gormStore) Delete(b *Blog) error {
	return s.db.Delete(b).Error
}

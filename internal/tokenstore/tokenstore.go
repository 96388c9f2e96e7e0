// Package tokenstore keeps the auth token in a small sqlite database so a
// new process can resume sending the Authorization header without logging
// in again.
package tokenstore

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const tokenKey = "auth_token"

type AuthToken struct {
	Name  string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open token db: %w", err)
	}
	if err := db.AutoMigrate(&AuthToken{}); err != nil {
		return nil, fmt.Errorf("migrate token db: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the stored token, or an empty string when none was saved.
func (s *Store) Load() (string, error) {
	var t AuthToken
	err := s.db.Where("name = ?", tokenKey).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return t.Value, nil
}

func (s *Store) Save(token string) error {
	t := AuthToken{Name: tokenKey, Value: token}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&t).Error
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	err := s.db.Where("name = ?", tokenKey).Delete(&AuthToken{}).Error
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

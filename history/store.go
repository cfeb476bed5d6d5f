// Package history persists a record of past greetings to a local SQLite
// database. History is best-effort: failures degrade to a warning upstream,
// never a failed run.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Greeting is one recorded run.
type Greeting struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"index"`
	Language  string
	Sum       float64
	CreatedAt int64 `gorm:"autoCreateTime:nano"`
}

// CreatedTime returns the record timestamp.
func (g *Greeting) CreatedTime() time.Time {
	return time.Unix(0, g.CreatedAt)
}

// BeforeCreate assigns the record id.
func (g *Greeting) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().UnixNano()
	}
	return nil
}

// Store wraps the greetings database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.AutoMigrate(&Greeting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores one greeting.
func (s *Store) Record(name string, language string, sum float64) (*Greeting, error) {
	g := &Greeting{
		Name:     name,
		Language: language,
		Sum:      sum,
	}
	if err := s.db.Create(g).Error; err != nil {
		return nil, fmt.Errorf("failed to record greeting: %w", err)
	}
	return g, nil
}

// Recent returns up to n greetings, newest first.
func (s *Store) Recent(n int) ([]Greeting, error) {
	var out []Greeting
	err := s.db.Order("created_at desc").Limit(n).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load greetings: %w", err)
	}
	return out, nil
}

// Count returns the number of recorded greetings.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&Greeting{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count greetings: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

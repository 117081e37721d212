// Package categories manages a workspace's category list.
package categories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// FileName is the category list's path relative to the workspace root.
const FileName = "categories.csv"

// Service provides in-memory lookup over the user's categories.
type Service struct {
	cats   []model.Category
	byName map[string]model.Category
}

// NewService creates a Service from a slice of categories.
func NewService(cats []model.Category) *Service {
	byName := make(map[string]model.Category, len(cats))
	for _, c := range cats {
		byName[strings.ToLower(c.Name)] = c
	}
	return &Service{cats: cats, byName: byName}
}

// Load reads categories.csv from a workspace root. A missing file yields an
// empty list.
func Load(root string) (*Service, error) {
	f, err := os.Open(filepath.Join(root, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening categories: %w", err)
	}
	defer f.Close()

	cats, err := ReadCategories(f)
	if err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return NewService(cats), nil
}

// All returns all categories in file order.
func (s *Service) All() []model.Category {
	return s.cats
}

// Enabled returns the enabled categories in file order.
func (s *Service) Enabled() []model.Category {
	var out []model.Category
	for _, c := range s.cats {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out
}

// Get returns a category by name, case-insensitively.
func (s *Service) Get(name string) (model.Category, bool) {
	c, ok := s.byName[strings.ToLower(name)]
	return c, ok
}

// Save writes the categories to <root>/categories.csv.
func (s *Service) Save(root string) error {
	f, err := os.Create(filepath.Join(root, FileName))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer f.Close()

	if err := WriteCategories(f, s.cats); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

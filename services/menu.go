package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"cafe-cli/models"
)

var (
	ErrNotFound  = errors.New("menu item not found")
	ErrEmptyName = errors.New("name is required")
)

type menuItemJSON struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type menuFileJSON struct {
	Menu map[string]menuItemJSON `json:"menu"`
}

// MenuStore owns the catalog of purchasable items and its JSON file.
// Persistence is best-effort: mutations always succeed in memory, and a
// failed save only produces a warning.
type MenuStore struct {
	path   string
	items  map[int]models.MenuItem
	logger *zap.Logger
}

func NewMenuStore(path string, logger *zap.Logger) *MenuStore {
	return &MenuStore{
		path:   path,
		items:  models.DefaultMenu(),
		logger: logger,
	}
}

// Load reads the menu file. A missing file is normal (first run) and
// yields the default catalog; an unreadable or malformed file is logged
// and also yields the default catalog rather than failing.
func (s *MenuStore) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("menu file unreadable, using default catalog",
				zap.String("path", s.path), zap.Error(err))
		}
		s.items = models.DefaultMenu()
		return
	}

	var file menuFileJSON
	if err := json.Unmarshal(data, &file); err != nil {
		s.logger.Warn("menu file corrupt, using default catalog",
			zap.String("path", s.path), zap.Error(err))
		s.items = models.DefaultMenu()
		return
	}

	items := make(map[int]models.MenuItem, len(file.Menu))
	for key, entry := range file.Menu {
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			s.logger.Warn("skipping menu entry with bad id", zap.String("id", key))
			continue
		}
		items[id] = models.MenuItem{ID: id, Name: entry.Name, Price: entry.Price}
	}
	s.items = items
}

func (s *MenuStore) save() error {
	file := menuFileJSON{Menu: make(map[string]menuItemJSON, len(s.items))}
	for id, item := range s.items {
		file.Menu[strconv.Itoa(id)] = menuItemJSON{Name: item.Name, Price: item.Price}
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *MenuStore) persist() {
	if err := s.save(); err != nil {
		s.logger.Warn("menu save failed, in-memory state kept",
			zap.String("path", s.path), zap.Error(err))
	}
}

// Items returns the catalog ordered by ascending id.
func (s *MenuStore) Items() []models.MenuItem {
	items := make([]models.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *MenuStore) Get(id int) (models.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return item, nil
}

// AddItem assigns the next id as max current id + 1 (1 when the menu is
// empty). Removing the highest id therefore frees it for the next add.
func (s *MenuStore) AddItem(name string, price int) (models.MenuItem, error) {
	if name == "" {
		return models.MenuItem{}, ErrEmptyName
	}
	id := 1
	for existing := range s.items {
		if existing >= id {
			id = existing + 1
		}
	}
	item := models.MenuItem{ID: id, Name: name, Price: price}
	s.items[id] = item
	s.persist()
	return item, nil
}

// UpdateItem applies the non-nil fields to an existing item. Callers
// pass nil for a field the user left blank or failed to parse.
func (s *MenuStore) UpdateItem(id int, name *string, price *int) error {
	item, ok := s.items[id]
	if !ok {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	if name != nil && *name != "" {
		item.Name = *name
	}
	if price != nil {
		item.Price = *price
	}
	s.items[id] = item
	s.persist()
	return nil
}

func (s *MenuStore) RemoveItem(id int) error {
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	delete(s.items, id)
	s.persist()
	return nil
}

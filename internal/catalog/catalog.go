// Package catalog provisions the badge catalog evaluated by the analytics engine.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed badges.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid badge catalog")

type file struct {
	Badges []domain.Badge `yaml:"badges"`
}

// Catalog is an ordered, validated list of badge definitions.
type Catalog struct {
	badges []domain.Badge
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read badge catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(f.Badges) == 0 {
		return nil, fmt.Errorf("%w: no badges defined", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(f.Badges))
	for i, b := range f.Badges {
		if err := validate(b); err != nil {
			return nil, fmt.Errorf("%w: badge %d (%q): %v", ErrInvalidCatalog, i, b.ID, err)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("%w: duplicate badge id %q", ErrInvalidCatalog, b.ID)
		}
		seen[b.ID] = true
	}
	return &Catalog{badges: f.Badges}, nil
}

func validate(b domain.Badge) error {
	if b.ID == "" {
		return errors.New("missing id")
	}
	if b.Name == "" {
		return errors.New("missing name")
	}
	req := b.Requirement
	switch req.Type {
	case domain.RequirementStreak,
		domain.RequirementTotalCompletions,
		domain.RequirementConsistencyRate,
		domain.RequirementRecoverySuccess,
		domain.RequirementResearchEngagement:
	default:
		return fmt.Errorf("unknown requirement type %q", req.Type)
	}
	if req.Threshold <= 0 {
		return errors.New("threshold must be positive")
	}
	if req.Type == domain.RequirementConsistencyRate && req.Threshold > 100 {
		return errors.New("consistency threshold is a percentage")
	}
	if req.HabitSpecific == req.GlobalAchievement {
		return errors.New("exactly one of habit_specific and global_achievement must be set")
	}
	if req.TimeframeDays < 0 || req.WithinDays < 0 {
		return errors.New("negative day count")
	}
	return nil
}

// Badges returns a copy of the catalog entries in definition order.
func (c *Catalog) Badges() []domain.Badge {
	out := make([]domain.Badge, len(c.badges))
	copy(out, c.badges)
	return out
}

func (c *Catalog) Len() int {
	return len(c.badges)
}

// Get looks up a badge by id.
func (c *Catalog) Get(id string) (domain.Badge, bool) {
	for _, b := range c.badges {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Badge{}, false
}

package service

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashmind/internal/analytics"
)

// DefaultCategories are suggested to every user alongside their own.
var DefaultCategories = []string{
	"alimentação",
	"transporte",
	"moradia",
	"saúde",
	"educação",
	"lazer",
	"compras",
	"serviços",
	"salário",
	"freelance",
	"investimentos",
	"outros",
}

// CategoryService lists the categories a user can pick from.
type CategoryService struct {
	reader   LedgerReader
	defaults []string
}

func NewCategoryService(reader LedgerReader, defaults []string) *CategoryService {
	return &CategoryService{reader: reader, defaults: defaults}
}

// ListCategories returns the defaults merged with the user's own categories, sorted and unique.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	used, err := s.reader.Categories(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(s.defaults)+len(used))
	categories := make([]string, 0, len(s.defaults)+len(used))
	for _, list := range [][]string{s.defaults, used} {
		for _, category := range list {
			category = analytics.NormalizeCategory(category)
			if category == "" {
				continue
			}
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			categories = append(categories, category)
		}
	}

	sort.Strings(categories)
	return categories, nil
}

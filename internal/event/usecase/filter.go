package usecase

import (
	"strings"

	"integra-recife/internal/event"
	"integra-recife/internal/model"
)

const (
	allCategories  = "todos"
	allSecretarias = "todas"
)

// secretariaCategories maps a city department to the event categories it runs.
var secretariaCategories = map[string][]string{
	"cultura": {"música", "teatro", "festival"},
	"turismo": {"gastronomia"},
}

// categoriesFor resolves the category and secretaria filters into a category set.
// nil means no restriction; empty reports that no category can match both filters.
func categoriesFor(f event.Filter) (cats []string, none bool) {
	category := strings.ToLower(strings.TrimSpace(f.Category))
	if category == allCategories {
		category = ""
	}

	secretaria := strings.ToLower(strings.TrimSpace(f.Secretaria))
	allowed, known := secretariaCategories[secretaria]
	if secretaria == allSecretarias || !known {
		allowed = nil
	}

	switch {
	case category == "" && allowed == nil:
		return nil, false
	case category == "":
		return allowed, false
	case allowed == nil:
		return []string{category}, false
	}

	for _, c := range allowed {
		if c == category {
			return []string{category}, false
		}
	}
	return nil, true
}

// statusFilter validates an optional resolved-status filter.
func statusFilter(s string) (model.EventStatus, error) {
	if s == "" {
		return "", nil
	}
	st := model.EventStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", event.ErrInvalidStatus
	}
	return st, nil
}

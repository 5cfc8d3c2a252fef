package sqlite

import (
	"strings"

	repo "integra-recife/internal/event/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if len(opt.Categories) > 0 {
		conditions = append(conditions, "LOWER(category) IN ("+placeholders(len(opt.Categories))+")")
		for _, c := range opt.Categories {
			args = append(args, strings.ToLower(c))
		}
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY id ASC")

	return strings.Join(parts, " "), args
}

// buildTransitionQuery builds the WHERE clause and full argument list for TransitionStatus.
// The status precondition is part of the statement so concurrent writers cannot double count.
func (r *implRepository) buildTransitionQuery(opt repo.TransitionStatusOptions) (string, []any) {
	args := []any{string(opt.To), opt.UpdatedAt, string(opt.From)}
	for _, id := range opt.IDs {
		args = append(args, id)
	}
	return "status = ? AND id IN (" + placeholders(len(opt.IDs)) + ")", args
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

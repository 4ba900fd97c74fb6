package persistence

import (
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// normalizeFilter applies pagination defaults
func normalizeFilter(filter *shared.Filter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 200 {
		filter.PageSize = 20
	}
	if filter.OrderDir != "asc" && filter.OrderDir != "desc" {
		filter.OrderDir = "desc"
	}
}

// applySearch adds a case-insensitive search over the given columns
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + search + "%"
	cond := query.Session(&gorm.Session{NewDB: true}).Where(columns[0]+" ILIKE ?", pattern)
	for _, col := range columns[1:] {
		cond = cond.Or(col+" ILIKE ?", pattern)
	}
	return query.Where(cond)
}

// applyPagination adds offset and limit from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	return query.
		Order("created_at " + filter.OrderDir).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize)
}

package usecase

import (
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
)

const defaultPageLimit = 100

// toPage checks skip >= 0 and 1 <= limit <= maxLimit. A zero limit means
// "not provided" and falls back to the default.
func toPage(q dto.PageQuery, maxLimit int) (entity.Page, error) {
	limit := q.Limit
	if limit == 0 {
		limit = defaultPageLimit
		if limit > maxLimit {
			limit = maxLimit
		}
	}
	if q.Skip < 0 || limit < 1 || limit > maxLimit {
		return entity.Page{}, ErrInvalidPagination
	}
	return entity.Page{Offset: q.Skip, Limit: limit}, nil
}

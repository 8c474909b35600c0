package pagination

// Params selects a page of results. A PageSize of 0 means everything.
type Params struct {
	Page     int
	PageSize int
}

func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	page := max(p.Page, 1)
	offset = (page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Page:       max(p.Page, 1),
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Slice returns the page of items selected by p along with its Meta.
func Slice[T any](items []T, p Params) ([]T, Meta) {
	meta := p.BuildMeta(len(items))

	offset, limit := p.CalculateOffsetLimit()
	if limit == 0 {
		return items, meta
	}
	if offset >= len(items) {
		return []T{}, meta
	}

	end := min(offset+limit, len(items))
	return items[offset:end], meta
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

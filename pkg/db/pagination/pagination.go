package pagination

// Pagination carries the page/limit query parameters shared by the admin
// listing endpoints.
type Pagination struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

type PageInfo struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func (p Pagination) Normalize(maxLimit int) Pagination {
	out := p
	if out.Page < 1 {
		out.Page = 1
	}
	if out.Limit < 1 {
		out.Limit = 20
	}
	if maxLimit > 0 && out.Limit > maxLimit {
		out.Limit = maxLimit
	}
	return out
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

func BuildPageInfo(p Pagination, total int64) PageInfo {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return PageInfo{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}

package util

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Pagination is the single pagination contract shared by every list query.
// Zero values fall back to the defaults; negative or out-of-range values
// are rejected up front.
type Pagination struct {
	Page      int    `form:"page" json:"page"`
	Limit     int    `form:"limit" json:"limit"`
	OrderBy   string `form:"orderBy" json:"orderBy"`
	SortOrder string `form:"sortOrder" json:"sortOrder"`
}

// Normalize validates the parameters and fills in defaults. It must be
// called before the pagination reaches any repository.
func (p *Pagination) Normalize() error {
	if p.Page < 0 || p.Limit < 0 {
		return ErrInvalidPagination
	}
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		return ErrInvalidPagination
	}
	switch p.SortOrder {
	case "":
		p.SortOrder = SortDesc
	case SortAsc, SortDesc:
	default:
		return ErrInvalidPagination
	}
	return nil
}

func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause resolves OrderBy against an allowlist of json-name -> column
// mappings and returns a SQL order clause. An empty OrderBy falls back to
// the given default column.
func (p *Pagination) OrderClause(allowed map[string]string, defaultColumn string) (string, error) {
	column := defaultColumn
	if p.OrderBy != "" {
		mapped, ok := allowed[p.OrderBy]
		if !ok {
			return "", ErrInvalidOrderBy
		}
		column = mapped
	}
	return column + " " + p.SortOrder, nil
}

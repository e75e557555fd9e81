package paging

import (
	"strings"

	"octobermarket/pkg/result"
)

const (
	// DefaultPageSize используется когда клиент не указал pageSize
	DefaultPageSize = 20
	// MaxPageSize - верхняя граница pageSize, проверяется валидаторами
	MaxPageSize = 25
)

// SortOrder задает направление сортировки
type SortOrder int

const (
	Unsorted SortOrder = iota
	Ascending
	Descending
)

// Options - общая часть всех постраничных запросов.
// SortBy использует текстовую конвенцию: "name" - по возрастанию, "-name" - по убыванию.
type Options struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"pageSize" form:"pageSize"`
	SortBy   string `json:"sortBy" form:"sortBy"`
}

// Sort разбирает SortBy на имя поля и направление
func (o Options) Sort() (string, SortOrder) {
	if o.SortBy == "" {
		return "", Unsorted
	}
	if strings.HasPrefix(o.SortBy, "-") {
		return strings.ToLower(strings.TrimPrefix(o.SortBy, "-")), Descending
	}
	return strings.ToLower(o.SortBy), Ascending
}

// Limit возвращает размер страницы с учетом значения по умолчанию
func (o Options) Limit() int {
	if o.PageSize > 0 {
		return o.PageSize
	}
	return DefaultPageSize
}

// Offset вычисляет смещение: (page-1)*pageSize, страницы нумеруются с 1
func (o Options) Offset() int {
	page := o.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * o.Limit()
}

// Validate проверяет границы page/pageSize и поле сортировки по whitelist.
// Возвращает ошибки полей для агрегации в ValidationError.
func (o Options) Validate(codePrefix string, sortable []string) []result.Error {
	var errs []result.Error

	if o.Page < 1 {
		errs = append(errs, *result.Validation(codePrefix+".Page", "Page must be greater than or equal to 1"))
	}

	if o.PageSize != 0 && (o.PageSize < 1 || o.PageSize > MaxPageSize) {
		errs = append(errs, *result.Validation(codePrefix+".PageSize", "Page size must be between 1 and 25"))
	}

	if field, _ := o.Sort(); field != "" && !contains(sortable, field) {
		errs = append(errs, *result.Validation(codePrefix+".SortField",
			"You can only sort by: "+strings.Join(sortable, ", ")))
	}

	return errs
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

// Paged - конверт ответа постраничного запроса.
// Total считается по всему отфильтрованному набору, не по текущей странице.
type Paged[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// NewPaged собирает конверт, подставляя фактический размер страницы
func NewPaged[T any](items []T, total int64, opts Options) Paged[T] {
	if items == nil {
		items = []T{}
	}
	return Paged[T]{
		Items:    items,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.Limit(),
	}
}

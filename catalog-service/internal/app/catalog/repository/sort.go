package repository

import (
	"octobermarket/pkg/paging"

	"gorm.io/gorm"
)

// applySort переводит поле сортировки запроса в ORDER BY.
// Поле уже прошло whitelist валидатора, sortable отображает его в колонку.
// Без поля сортировки порядок - по возрастанию id: детерминированные
// страницы при повторных запросах по неизменным данным
func applySort(db *gorm.DB, opts paging.Options, sortable map[string]string) *gorm.DB {
	field, order := opts.Sort()
	column, ok := sortable[field]
	if !ok || order == paging.Unsorted {
		return db.Order("id ASC")
	}

	if order == paging.Descending {
		return db.Order(column + " DESC")
	}
	return db.Order(column + " ASC")
}

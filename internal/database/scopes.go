package database

import (
	"gorm.io/gorm"

	"github.com/flowboard/flowboard-api/internal/sorting"
)

// OrderBy applies a parsed sort order. A nil order leaves the query untouched.
func OrderBy(order *sorting.Order) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if order == nil {
			return db
		}
		return db.Order(order.Column())
	}
}

// Limit truncates the result set when n is positive.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n <= 0 {
			return db
		}
		return db.Limit(n)
	}
}

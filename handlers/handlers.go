package handlers

import (
	"strconv"

	"manyar-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam reads the :id path parameter. Non-numeric ids are
// treated the same as unknown ids by the callers (404).
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// imagesBySortOrder orders preloaded product images by sort order,
// with insertion order breaking ties.
func imagesBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

// productCountsByCategory returns product counts keyed by category id
// in a single grouped query.
func productCountsByCategory(db *gorm.DB) (map[uint]int64, error) {
	var rows []struct {
		CategoryID uint
		N          int64
	}
	err := db.Model(&models.Product{}).
		Select("category_id, count(*) as n").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.N
	}
	return counts, nil
}

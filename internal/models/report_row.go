package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryReportRow is one aggregated (category, user) spending total for a
// date window. It is derived by the report query and never persisted.
//
// Date carries whichever single expense date the grouping returns for the
// group; it is deliberately not part of the grouping key.
type CategoryReportRow struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	UserName string          `json:"userName"`
	Date     time.Time       `json:"date"`
}

package models

import (
	"time"

	"github.com/yurifrl/moneyprinter/pkg/sanitize"
)

// Accrual records one tick: how much was printed and the total afterwards.
type Accrual struct {
	At     time.Time
	Amount float64
	Total  float64
}

func (a Accrual) Time() string {
	return a.At.Format(time.RFC3339)
}

func (a Accrual) AmountText() string {
	return sanitize.FormatTotal(a.Amount)
}

func (a Accrual) TotalText() string {
	return sanitize.FormatTotal(a.Total)
}

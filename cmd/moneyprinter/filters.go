package main

import (
	"fmt"
	"io"

	"github.com/yurifrl/moneyprinter/pkg/csv"
	"github.com/yurifrl/moneyprinter/pkg/models"
)

type filters struct {
	csv       bool
	minAmount float64
	skipZero  bool
}

func (f *filters) toFilterFunc() csv.FilterFunc[models.Accrual] {
	return func(a models.Accrual) bool {
		if f.skipZero && a.Amount == 0 {
			return false
		}
		if f.minAmount != 0 && a.Amount < f.minAmount {
			return false
		}
		return true
	}
}

// LedgerPrinter streams accruals as CSV lines while the clock runs.
type LedgerPrinter struct {
	out     io.Writer
	filter  csv.FilterFunc[models.Accrual]
	started bool
}

func NewLedgerPrinter(out io.Writer, filters *filters) *LedgerPrinter {
	return &LedgerPrinter{
		out:    out,
		filter: filters.toFilterFunc(),
	}
}

func (p *LedgerPrinter) Print(a models.Accrual) {
	if !p.started {
		fmt.Fprint(p.out, csv.Header)
		p.started = true
	}
	if p.filter(a) {
		fmt.Fprint(p.out, csv.Line(a))
	}
}

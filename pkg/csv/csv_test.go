package csv

import (
	"testing"
	"time"

	"github.com/yurifrl/moneyprinter/pkg/models"
)

func TestCreate(t *testing.T) {
	at := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)
	records := []models.Accrual{
		{At: at, Amount: 12.34, Total: 12.34},
		{At: at.Add(time.Second), Amount: 12.34, Total: 24.68},
		{At: at.Add(2 * time.Second), Amount: 0, Total: 24.68},
	}

	got := string(Create(records, nil))
	want := "Time,Amount,Total\n" +
		"2025-03-17T12:00:00Z,12.34,12.34\n" +
		"2025-03-17T12:00:01Z,12.34,24.68\n" +
		"2025-03-17T12:00:02Z,0.00,24.68\n"
	if got != want {
		t.Errorf("Create mismatch:\nExpected: %q\nGot: %q", want, got)
	}
}

func TestCreateFiltered(t *testing.T) {
	at := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)
	records := []models.Accrual{
		{At: at, Amount: 0, Total: 0},
		{At: at.Add(time.Second), Amount: 5.6, Total: 5.6},
	}

	nonZero := func(a models.Accrual) bool { return a.Amount > 0 }
	got := string(Create(records, nonZero))
	want := "Time,Amount,Total\n2025-03-17T12:00:01Z,5.60,5.60\n"
	if got != want {
		t.Errorf("Create mismatch:\nExpected: %q\nGot: %q", want, got)
	}
}

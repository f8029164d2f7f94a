package csv

import (
	"bytes"
	"fmt"
)

type Record interface {
	Time() string
	AmountText() string
	TotalText() string
}

type FilterFunc[T Record] func(T) bool

const Header = "Time,Amount,Total\n"

func Create[T Record](records []T, filter FilterFunc[T]) []byte {
	var buf bytes.Buffer
	buf.WriteString(Header)
	for _, r := range records {
		if filter == nil || filter(r) {
			buf.WriteString(Line(r))
		}
	}
	return buf.Bytes()
}

// Line renders a single record without the header, for streaming output.
func Line[T Record](r T) string {
	return fmt.Sprintf("%s,%s,%s\n", r.Time(), r.AmountText(), r.TotalText())
}

// Package entities defines the records managed by the rental store and their
// one-line text encoding.
package entities

import (
	"strconv"
	"strings"
)

const (
	csvQuote     = `"`
	csvSeparator = `","`
	noneToken    = "None"
)

// Record is anything the store can persist as one line.
type Record interface {
	ToCSV() string
}

// Decoder turns one persisted line back into a validated record.
type Decoder[T Record] func(line string) (T, error)

// joinCSV quotes every field and joins them. Embedded quotes are not escaped.
func joinCSV(fields ...string) string {
	return csvQuote + strings.Join(fields, csvSeparator) + csvQuote
}

// splitCSV reverses joinCSV. A field containing "," splits in two.
func splitCSV(line string) []string {
	return strings.Split(strings.Trim(strings.TrimSpace(line), csvQuote), csvSeparator)
}

// fields walks the split parts in declared order, handing out a fallback
// whenever a part is missing.
type fields struct {
	parts []string
	next  int
}

func newFields(line string) *fields {
	return &fields{parts: splitCSV(line)}
}

func (f *fields) str(def string) string {
	if f.next >= len(f.parts) {
		f.next++
		return def
	}
	v := f.parts[f.next]
	f.next++
	return v
}

func (f *fields) uint32(def uint32) uint32 {
	n, err := strconv.ParseUint(f.str(""), 10, 32)
	if err != nil {
		return def
	}
	return uint32(n)
}

// bool accepts only the lowercase words ToCSV writes; strconv.ParseBool would
// also let "1", "T" and "TRUE" through.
func (f *fields) bool(def bool) bool {
	switch f.str("") {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

func (f *fields) date(def Date) Date {
	d, err := parseDate(f.str(""))
	if err != nil {
		return def
	}
	return d
}

// optionalUint32 treats any non-numeric token, "None" included, as absent.
func (f *fields) optionalUint32() *uint32 {
	n, err := strconv.ParseUint(f.str(noneToken), 10, 32)
	if err != nil {
		return nil
	}
	v := uint32(n)
	return &v
}

func formatUint32(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatOptionalUint32(v *uint32) string {
	if v == nil {
		return noneToken
	}
	return formatUint32(*v)
}

package render

import (
	"strconv"
	"strings"
)

// coerceValue attempts to read a cell's string as a number written with a
// decimal comma. Integer spellings become int64, any other numeric form
// float64, and anything unparseable keeps its string form. The two numeric
// types stay apart so the merge pass can tell "1" and "1,0" cells apart.
func coerceValue(s string) interface{} {
	norm := strings.ReplaceAll(s, ",", ".")
	if i, err := strconv.ParseInt(norm, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(norm, 64); err == nil {
		return f
	}
	return s
}

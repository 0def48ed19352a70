// internal/types/style.go
package types

// StyledRange marks a span of columns on a single line that should be
// rendered with a named theme style. Columns are rune indices, StartCol
// inclusive, EndCol exclusive.
type StyledRange struct {
	StartCol  int
	EndCol    int
	StyleName string
}

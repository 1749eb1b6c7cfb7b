package sods

import (
	"fmt"

	"github.com/tealeg/xlsx"
)

// CompareXLSX checks the XF records of a BIFF format table against the
// cell styles of the same workbook saved as XLSX, XF i against styles[i].
// It returns an empty string if they are equivalent, or a description of
// the first mismatch.
func CompareXLSX(t *FormatTable, styles []*xlsx.Style) string {
	if len(t.Xfs) != len(styles) {
		return fmt.Sprintf("XF count mismatch: xls %d, xlsx %d", len(t.Xfs), len(styles))
	}

	for i, x := range styles {
		xlsStyle, err := t.Style(i)
		if err != nil {
			return fmt.Sprintf("XF %d: cannot decode xls style: %s", i, err)
		}
		xlsxStyle, err := StyleFromXLSX(x)
		if err != nil {
			return fmt.Sprintf("XF %d: cannot decode xlsx style: %s", i, err)
		}
		if msg := diffCSS(xlsStyle.CSSProperties(), xlsxStyle.CSSProperties()); msg != "" {
			return fmt.Sprintf("XF %d: %s", i, msg)
		}

		if x == nil || !x.ApplyBorder {
			continue
		}
		xlsBorder, _ := t.Border(i)
		xlsxBorder, err := BorderFromXLSX(x.Border)
		if err != nil {
			return fmt.Sprintf("XF %d: cannot decode xlsx border: %s", i, err)
		}
		if !xlsBorder.Equal(xlsxBorder) {
			return fmt.Sprintf("XF %d: border mismatch: xls %q, xlsx %q", i, xlsBorder, xlsxBorder)
		}
	}

	return ""
}

// diffCSS describes the first property that differs.
func diffCSS(xls, xlsx *CSSProperties) string {
	var msg string
	check := func(key string) {
		if msg != "" {
			return
		}
		a, _ := xls.Get(key)
		b, _ := xlsx.Get(key)
		if a != b {
			msg = fmt.Sprintf("%s mismatch: xls %q, xlsx %q", key, a, b)
		}
	}

	for _, k := range xls.Keys() {
		check(k)
	}
	for _, k := range xlsx.Keys() {
		check(k)
	}

	return msg
}

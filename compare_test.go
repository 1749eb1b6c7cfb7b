package sods

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

// xlsxStyles renders every XF of the table the way an XLSX export would.
func xlsxStyles(t *testing.T, table *FormatTable) []*xlsx.Style {
	t.Helper()

	out := make([]*xlsx.Style, len(table.Xfs))
	for i := range table.Xfs {
		s, err := table.Style(i)
		require.NoError(t, err)
		b, err := table.Border(i)
		require.NoError(t, err)

		out[i] = XLSXStyle(s, b)
	}

	return out
}

func TestCompareXLSX(t *testing.T) {
	table, err := ReadFormatTable(bytes.NewReader(biff8Stream()))
	require.NoError(t, err)

	styles := xlsxStyles(t, table)
	assert.Equal(t, "", CompareXLSX(table, styles))

	styles[1].Font.Size = 11
	assert.Equal(t, `XF 1: font-size mismatch: xls "12", xlsx "11"`, CompareXLSX(table, styles))

	styles = xlsxStyles(t, table)
	styles[2].Alignment.Horizontal = "general"
	assert.Equal(t, `XF 2: text-align mismatch: xls "right", xlsx ""`, CompareXLSX(table, styles))

	styles = xlsxStyles(t, table)
	styles[1].Border.TopColor = "FF00FF00"
	assert.Contains(t, CompareXLSX(table, styles), "XF 1: border mismatch")

	assert.Equal(t, "XF count mismatch: xls 3, xlsx 2", CompareXLSX(table, styles[:2]))
}

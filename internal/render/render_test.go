package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawalker/backend/internal/dataset"
)

func load(t *testing.T, name, data string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.LoadBytes(name, []byte(data))
	require.NoError(t, err)
	return ds
}

func TestHTMLContainsSummaryAndPreview(t *testing.T) {
	ds := load(t, "t.csv", "city,population\nOslo,700000\nBergen,290000\n")
	info := dataset.Describe(ds, "t.csv", "/data/t.csv")

	html, err := HTML(ds, info)
	require.NoError(t, err)

	assert.Contains(t, html, "city")
	assert.Contains(t, html, "population")
	assert.Contains(t, html, "int64")
	assert.Contains(t, html, "Oslo")
}

func TestHTMLRendersChartsForNumericColumns(t *testing.T) {
	ds := load(t, "t.csv", "v\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n")
	info := dataset.Describe(ds, "t.csv", "/data/t.csv")

	html, err := HTML(ds, info)
	require.NoError(t, err)
	assert.Contains(t, html, "<svg")
}

func TestHTMLNonFiniteFloats(t *testing.T) {
	ds := load(t, "t.csv", "a\n1.5\nNaN\n2.5\n+Inf\n-Inf\n")
	info := dataset.Describe(ds, "t.csv", "/data/t.csv")
	require.Equal(t, "float64", ds.DTypes()["a"])

	html, err := HTML(ds, info)
	require.NoError(t, err)
	// The finite values still chart.
	assert.Contains(t, html, "<svg")
}

func TestHTMLAllNonFiniteColumn(t *testing.T) {
	ds := load(t, "t.csv", "a\nNaN\nNaN\n")
	info := dataset.Describe(ds, "t.csv", "/data/t.csv")

	html, err := HTML(ds, info)
	require.NoError(t, err)
	// Nothing to bin, so the column gets no chart rather than an error.
	assert.NotContains(t, html, "<svg")
}

func TestHTMLNoChartsForStringOnlyData(t *testing.T) {
	ds := load(t, "t.csv", "a,b\nx,y\nq,w\n")
	info := dataset.Describe(ds, "t.csv", "/data/t.csv")

	html, err := HTML(ds, info)
	require.NoError(t, err)
	assert.NotContains(t, html, "<svg")
	assert.Contains(t, html, "preview-table")
}

func TestHTMLPreviewTruncation(t *testing.T) {
	data := "n\n"
	for i := 0; i < 50; i++ {
		data += "7\n"
	}
	ds := load(t, "t.csv", data)
	info := dataset.Describe(ds, "t.csv", "/data/t.csv")

	html, err := HTML(ds, info)
	require.NoError(t, err)
	assert.Contains(t, html, "Showing first 20 of 50 rows")
}

func TestHTMLEscapesCellValues(t *testing.T) {
	ds := load(t, "t.csv", "a\n<script>alert(1)</script>\n")
	info := dataset.Describe(ds, "t.csv", "/data/t.csv")

	html, err := HTML(ds, info)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

// Package render turns a dataset into the embeddable explorer
// artifact: column summaries, distribution charts for numeric
// columns, and a data preview.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/datawalker/backend/internal/dataset"
	"github.com/datawalker/backend/internal/models"
)

const (
	previewRows   = 20
	maxCharts     = 6
	histogramBins = 10
)

type columnSummary struct {
	Name    string
	DType   string
	NonNull int
}

type artifactData struct {
	Info      *models.FileInfo
	Columns   []columnSummary
	Charts    []template.HTML
	Header    []string
	Preview   [][]string
	Truncated bool
}

var artifactTmpl = template.Must(template.New("artifact").Parse(artifactHTML))

// HTML renders the explorer artifact for a dataset. The result is a
// self-contained fragment embedded into the page shell and returned
// verbatim by the load/upload endpoints.
func HTML(ds *dataset.Dataset, info *models.FileInfo) (string, error) {
	data := artifactData{
		Info:      info,
		Columns:   summarize(ds),
		Charts:    charts(ds),
		Header:    ds.ColumnNames(),
		Preview:   preview(ds),
		Truncated: ds.NumRows() > previewRows,
	}

	var buf bytes.Buffer
	if err := artifactTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering artifact: %w", err)
	}
	return buf.String(), nil
}

func summarize(ds *dataset.Dataset) []columnSummary {
	summaries := make([]columnSummary, 0, ds.NumColumns())
	for _, col := range ds.Columns {
		nonNull := 0
		for _, v := range col.Values {
			if v != nil {
				nonNull++
			}
		}
		summaries = append(summaries, columnSummary{
			Name:    col.Name,
			DType:   col.Type.String(),
			NonNull: nonNull,
		})
	}
	return summaries
}

// charts renders a histogram per numeric column, up to maxCharts.
func charts(ds *dataset.Dataset) []template.HTML {
	var out []template.HTML
	for _, col := range ds.Columns {
		if len(out) >= maxCharts {
			break
		}
		if col.Type != dataset.TypeInt && col.Type != dataset.TypeFloat {
			continue
		}
		svg, err := histogram(col)
		if err != nil {
			continue // a column that will not chart is not fatal
		}
		out = append(out, template.HTML(svg))
	}
	return out
}

func histogram(col dataset.Column) (string, error) {
	values := numericValues(col)
	if len(values) == 0 {
		return "", fmt.Errorf("column %s has no numeric values", col.Name)
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	bins := histogramBins
	width := (max - min) / float64(bins)
	if width == 0 {
		bins = 1
		width = 1
	}

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - min) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	bars := make([]chart.Value, bins)
	for i, c := range counts {
		bars[i] = chart.Value{
			Value: float64(c),
			Label: fmt.Sprintf("%.4g", min+float64(i)*width),
		}
	}

	graph := chart.BarChart{
		Title:    col.Name,
		Width:    380,
		Height:   220,
		BarWidth: 24,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// numericValues extracts the finite numbers of a column. NaN and Inf
// parse as valid float cells but have no bin, so they are excluded
// from the histogram.
func numericValues(col dataset.Column) []float64 {
	values := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		switch n := v.(type) {
		case int64:
			values = append(values, float64(n))
		case float64:
			if math.IsNaN(n) || math.IsInf(n, 0) {
				continue
			}
			values = append(values, n)
		}
	}
	return values
}

func preview(ds *dataset.Dataset) [][]string {
	rows := ds.Rows(previewRows)
	out := make([][]string, len(rows))
	names := ds.ColumnNames()
	for i, row := range rows {
		cells := make([]string, len(names))
		for j, name := range names {
			v := row[name]
			if v == nil {
				cells[j] = ""
				continue
			}
			cells[j] = fmt.Sprintf("%v", v)
		}
		out[i] = cells
	}
	return out
}

const artifactHTML = `<div class="explorer">
  <div class="explorer-summary">
    <table class="summary-table">
      <thead><tr><th>Column</th><th>Type</th><th>Non-null</th></tr></thead>
      <tbody>
      {{range .Columns}}<tr><td>{{.Name}}</td><td>{{.DType}}</td><td>{{.NonNull}}</td></tr>
      {{end}}</tbody>
    </table>
  </div>
  {{if .Charts}}
  <div class="explorer-charts">
    {{range .Charts}}<div class="chart">{{.}}</div>
    {{end}}
  </div>
  {{end}}
  <div class="explorer-preview">
    <table class="preview-table">
      <thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
      <tbody>
      {{range .Preview}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
      {{end}}</tbody>
    </table>
    {{if .Truncated}}<p class="preview-note">Showing first {{len .Preview}} of {{.Info.Rows}} rows</p>{{end}}
  </div>
</div>
`

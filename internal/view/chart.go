package view

import "fmt"

type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
)

const (
	colorTeal   = "rgba(75, 192, 192, %s)"
	colorRed    = "rgba(255, 99, 132, %s)"
	colorYellow = "rgba(255, 206, 86, %s)"
	colorPurple = "rgba(153, 102, 255, %s)"
	colorBlue   = "rgba(54, 162, 235, %s)"
)

// Dataset mirrors the Chart.js dataset object.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     []string  `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Chart struct {
	ID     string    `json:"-"`
	Title  string    `json:"-"`
	Type   ChartType `json:"type"`
	Data   ChartData `json:"data"`
	Legend bool      `json:"-"`
	// Scales is false for pie charts.
	Scales bool `json:"-"`
}

// Config is the object handed to the Chart.js constructor.
func (c Chart) Config() map[string]any {
	options := map[string]any{
		"responsive": true,
		"plugins":    map[string]any{"legend": map[string]any{"display": c.Legend}},
	}
	if c.Scales {
		options["scales"] = map[string]any{"y": map[string]any{"beginAtZero": true}}
	}
	return map[string]any{
		"type":    c.Type,
		"data":    c.Data,
		"options": options,
	}
}

func NewChart(id, title string, typ ChartType, labels []string, ds ...Dataset) Chart {
	return Chart{
		ID:     id,
		Title:  title,
		Type:   typ,
		Data:   ChartData{Labels: labels, Datasets: ds},
		Legend: true,
		Scales: typ != ChartPie,
	}
}

// NewDataset colours each value with the palette, cycling when needed.
func NewDataset(label string, data []float64, palette ...string) Dataset {
	ds := Dataset{Label: label, Data: data, BorderWidth: 1}
	if len(palette) == 0 {
		palette = []string{colorRed}
	}
	n := len(data)
	if len(palette) == 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		c := palette[i%len(palette)]
		ds.BackgroundColor = append(ds.BackgroundColor, sprintfColor(c, "0.6"))
		ds.BorderColor = append(ds.BorderColor, sprintfColor(c, "1"))
	}
	return ds
}

func sprintfColor(pattern, alpha string) string {
	return fmt.Sprintf(pattern, alpha)
}

func Ints(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

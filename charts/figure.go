// Package charts builds Plotly figure specifications for the dashboard.
// The structs mirror the subset of the Plotly JSON schema the two figures
// need; the page template marshals them and hands them to plotly.js.
package charts

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode,omitempty"`
	Name          string    `json:"name,omitempty"`
	X             []string  `json:"x,omitempty"`
	Y             []float64 `json:"y,omitempty"`
	YAxis         string    `json:"yaxis,omitempty"`
	Line          *Line     `json:"line,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`

	// Indicator-only fields.
	Value *float64   `json:"value,omitempty"`
	Title *Text      `json:"title,omitempty"`
	Gauge *GaugeSpec `json:"gauge,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

type Text struct {
	Text string `json:"text"`
}

type GaugeSpec struct {
	Axis    GaugeAxis `json:"axis"`
	Bar     GaugeBar  `json:"bar"`
	BgColor string    `json:"bgcolor,omitempty"`
	Steps   []Band    `json:"steps,omitempty"`
}

type GaugeAxis struct {
	Range      []float64 `json:"range"`
	TickSuffix string    `json:"ticksuffix,omitempty"`
}

type GaugeBar struct {
	Color string `json:"color,omitempty"`
}

type Band struct {
	Range []float64 `json:"range"`
	Color string    `json:"color"`
}

type Layout struct {
	Title        string       `json:"title,omitempty"`
	PlotBgColor  string       `json:"plot_bgcolor,omitempty"`
	PaperBgColor string       `json:"paper_bgcolor,omitempty"`
	Font         *Font        `json:"font,omitempty"`
	Margin       *Margin      `json:"margin,omitempty"`
	Height       int          `json:"height,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	YAxis2       *Axis        `json:"yaxis2,omitempty"`
	HoverMode    string       `json:"hovermode,omitempty"`
	Legend       *Legend      `json:"legend,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
}

type Axis struct {
	Title      string    `json:"title,omitempty"`
	ShowGrid   *bool     `json:"showgrid,omitempty"`
	GridColor  string    `json:"gridcolor,omitempty"`
	Range      []float64 `json:"range,omitempty"`
	TickFormat string    `json:"tickformat,omitempty"`
	Overlaying string    `json:"overlaying,omitempty"`
	Side       string    `json:"side,omitempty"`
}

type Font struct {
	Color string `json:"color,omitempty"`
}

type Margin struct {
	Top    int `json:"t"`
	Bottom int `json:"b"`
}

type Legend struct {
	YAnchor string  `json:"yanchor,omitempty"`
	Y       float64 `json:"y,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
	X       float64 `json:"x,omitempty"`
	BgColor string  `json:"bgcolor,omitempty"`
}

type Annotation struct {
	X         string  `json:"x"`
	Y         float64 `json:"y"`
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	ArrowHead int     `json:"arrowhead,omitempty"`
	Font      *Font   `json:"font,omitempty"`
}

// Dashboard color theme, matching the page styling.
const (
	colorLow   = "#ef4444"
	colorMid   = "#eab308"
	colorHigh  = "#4ade80"
	colorPanel = "#1f2937"
	colorGrid  = "#374151"
	colorMuted = "#94a3b8"
	colorText  = "white"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

package charts

// Probability band boundaries, in percent.
const (
	bandLow  = 33
	bandHigh = 66
)

// Gauge builds the current-probability gauge. The needle value is a
// percentage in [0,100]; the three fixed bands are red, yellow and green.
func Gauge(pct float64) Figure {
	return Figure{
		Data: []Trace{
			{
				Type:  "indicator",
				Mode:  "gauge+number",
				Value: floatPtr(pct),
				Title: &Text{Text: "Current Probability"},
				Gauge: &GaugeSpec{
					Axis:    GaugeAxis{Range: []float64{0, 100}, TickSuffix: "%"},
					Bar:     GaugeBar{Color: colorHigh},
					BgColor: "gray",
					Steps: []Band{
						{Range: []float64{0, bandLow}, Color: colorLow},
						{Range: []float64{bandLow, bandHigh}, Color: colorMid},
						{Range: []float64{bandHigh, 100}, Color: colorHigh},
					},
				},
			},
		},
		Layout: Layout{
			PlotBgColor:  colorPanel,
			PaperBgColor: colorPanel,
			Font:         &Font{Color: colorText},
			Margin:       &Margin{Top: 60, Bottom: 40},
			Height:       300,
		},
	}
}

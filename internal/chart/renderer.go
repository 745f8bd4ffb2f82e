package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fxcharter/internal/calculator"
	"fxcharter/internal/model"
)

// ErrNoCandles is returned when a render is attempted on an empty series.
var ErrNoCandles = errors.New("no candles to render")

const (
	upColor   = "#26a69a"
	downColor = "#ef5350"
	barColor  = "royalblue"
	sepColor  = "rgba(150,150,150,0.4)"
)

// Renderer builds the two-panel candlestick figure: candles on top, a
// volume-or-range bar panel below, with a vertical separator at each day
// boundary.
type Renderer struct {
	Symbol   string
	Interval string
	Height   int
	Width    int
}

// NewRenderer creates a Renderer with the given chart dimensions.
func NewRenderer(symbol, interval string, height, width int) *Renderer {
	return &Renderer{Symbol: symbol, Interval: interval, Height: height, Width: width}
}

func (r *Renderer) title() string {
	return fmt.Sprintf("%s - (%s)", r.Symbol, r.Interval)
}

// xLabels formats candle timestamps as "dd/mm HH:MM" category labels. A
// category axis makes weekend gaps disappear instead of leaving holes.
func xLabels(candles model.Series) []string {
	labels := make([]string, len(candles))
	for i, c := range candles {
		labels[i] = c.Time.UTC().Format("02/01 15:04")
	}
	return labels
}

func (r *Renderer) klineChart(candles model.Series, x []string) *charts.Kline {
	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: r.title(),
			Width:     fmt.Sprintf("%dpx", r.Width),
			Height:    fmt.Sprintf("%dpx", r.Height*3/4),
		}),
		charts.WithTitleOpts(opts.Title{Title: r.title()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside", Start: 0, End: 100}),
	)

	data := make([]opts.KlineData, len(candles))
	for i, c := range candles {
		// echarts kline value order: open, close, low, high
		data[i] = opts.KlineData{Value: [4]float64{c.Open, c.Close, c.Low, c.High}}
	}

	seriesOpts := []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:        upColor,
			Color0:       downColor,
			BorderColor:  upColor,
			BorderColor0: downColor,
		}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol: []string{"none", "none"},
			LineStyle: &opts.LineStyle{
				Color: sepColor,
				Width: 1,
				Type:  "solid",
			},
		}),
	}
	for _, b := range calculator.DayBoundaries(candles) {
		seriesOpts = append(seriesOpts, charts.WithMarkLineNameXAxisItemOpts(
			opts.MarkLineNameXAxisItem{Name: "", XAxis: b},
		))
	}

	kline.SetXAxis(x).AddSeries(r.Symbol, data, seriesOpts...)
	return kline
}

func (r *Renderer) subChart(candles model.Series, x []string) *charts.Bar {
	var (
		values []float64
		name   string
	)
	if candles.HasVolume() {
		name = "Volume"
		values = make([]float64, len(candles))
		for i, c := range candles {
			values[i] = c.Volume
		}
	} else {
		name = "Range"
		values = calculator.RangeSeries(candles)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  fmt.Sprintf("%dpx", r.Width),
			Height: fmt.Sprintf("%dpx", r.Height/4),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      name,
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
	)

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(x).AddSeries(name, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: barColor}),
	)
	return bar
}

// RenderHTML writes the interactive two-panel chart to path.
func (r *Renderer) RenderHTML(candles model.Series, path string) error {
	if len(candles) == 0 {
		return ErrNoCandles
	}

	x := xLabels(candles)
	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.PageTitle = r.title()
	page.AddCharts(r.klineChart(candles, x), r.subChart(candles, x))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

package hourly

import "fmt"

// {{{ var()

// The canvas is fixed; bars always get the same slot and gap, only
// their heights scale with the data. Units are abstract canvas units;
// renderers scale them to their surface.
var(
	CanvasWidth  = 900.0
	CanvasHeight = 400.0
	Margin       = 60.0

	PlotWidth  = CanvasWidth - 2*Margin
	PlotHeight = CanvasHeight - 2*Margin

	BarSlotWidth = PlotWidth / 18.0
	BarGap       = 15.0

	BaselineY  = CanvasHeight - 50.0
	AxisRightX = CanvasWidth - 50.0
)

// }}}

// {{{ Bar{}, Line{}, Layout{}

type Bar struct {
	Hour  int
	Count int

	X, Y    float64 // top-left corner
	W, H    float64
	CenterX float64 // for centring the labels

	HourLabel  string // eg "09:00", under the bar
	CountLabel string // above the bar; empty when the bin is empty
}

type Line struct {
	X1, Y1, X2, Y2 float64
}

// The full drawable geometry: title, axes, bars, captions. Consumers
// draw it; nothing in this package knows about a drawing surface.
type Layout struct {
	Width, Height float64

	Title          string
	TitleX, TitleY float64

	YCaption             string
	YCaptionX, YCaptionY float64

	HourLabelY float64
	Axes       []Line
	Bars       []Bar
}

// }}}

// {{{ countToHeight

// Heights scale against the busiest hour (floored to 1 by MaxCount),
// so an all-zero histogram lays out flat.
func countToHeight(count, maxCount int) float64 {
	return float64(count) / float64(maxCount) * PlotHeight
}

// }}}
// {{{ hd.BarGeometry

func (hd HistogramData)BarGeometry() []Bar {
	max := hd.MaxCount()

	bars := []Bar{}
	for hour,count := range hd.Bins {
		x := Margin + float64(hour)*BarSlotWidth + BarGap/2.0
		h := countToHeight(count, max)

		bar := Bar{
			Hour: hour,
			Count: count,
			X: x,
			Y: BaselineY - h,
			W: BarSlotWidth - BarGap,
			H: h,
			CenterX: x + BarSlotWidth/2.0,
			HourLabel: fmt.Sprintf("%02d:00", hour),
		}
		if count > 0 { bar.CountLabel = fmt.Sprintf("%d", count) }

		bars = append(bars, bar)
	}

	return bars
}

// }}}
// {{{ hd.Layout

func (hd HistogramData)Layout() Layout {
	return Layout{
		Width: CanvasWidth,
		Height: CanvasHeight,

		Title: hd.Title(),
		TitleX: CanvasWidth/2.0,
		TitleY: 30.0,

		YCaption: "Flights",
		YCaptionX: Margin - 25.0,
		YCaptionY: Margin + PlotHeight/2.0,

		HourLabelY: BaselineY + 20.0,

		Axes: []Line{
			{Margin, Margin, Margin, BaselineY},     // y axis
			{Margin, BaselineY, AxisRightX, BaselineY}, // x axis
		},

		Bars: hd.BarGeometry(),
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}

// Provides routines to render departure histograms as PDFs
package fpdf

import(
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/skypies/depstats/hourly"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

// {{{ var()

var(
	// The hourly layout is in abstract canvas units; scale to mm, so
	// the 900-unit canvas spans a landscape Letter page.
	MMPerUnit = 0.29

	BarFillRGB = []int{0x00, 0x00, 0xcc}
	AxisRGB    = []int{0x00, 0x00, 0x00}
)

// }}}

func mm(v float64) float64 { return v * MMPerUnit }

// {{{ NewHistogramPdf

func NewHistogramPdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	return pdf
}

// }}}
// {{{ DrawTitle

func DrawTitle(pdf *gofpdf.Fpdf, l hourly.Layout) {
	pdf.SetFont("Arial", "B", 14)
	w := pdf.GetStringWidth(l.Title)
	pdf.MoveTo(mm(l.TitleX) - w/2.0, mm(l.TitleY))
	pdf.Cell(w, 6, l.Title)
	pdf.SetFont("Arial", "", 10)
}

// }}}
// {{{ DrawAxes

func DrawAxes(pdf *gofpdf.Fpdf, l hourly.Layout) {
	pdf.SetDrawColor(AxisRGB[0], AxisRGB[1], AxisRGB[2])
	pdf.SetLineWidth(0.5)
	for _,axis := range l.Axes {
		pdf.MoveTo(mm(axis.X1), mm(axis.Y1))
		pdf.LineTo(mm(axis.X2), mm(axis.Y2))
	}
	pdf.DrawPath("D")
}

// }}}
// {{{ DrawBars

func DrawBars(pdf *gofpdf.Fpdf, l hourly.Layout) {
	pdf.SetFillColor(BarFillRGB[0], BarFillRGB[1], BarFillRGB[2])

	for _,bar := range l.Bars {
		if bar.H > 0 {
			pdf.Rect(mm(bar.X), mm(bar.Y), mm(bar.W), mm(bar.H), "F")
		}

		hw := pdf.GetStringWidth(bar.HourLabel)
		pdf.MoveTo(mm(bar.CenterX) - hw/2.0, mm(l.HourLabelY))
		pdf.Cell(hw, 4, bar.HourLabel)

		if bar.CountLabel != "" {
			cw := pdf.GetStringWidth(bar.CountLabel)
			pdf.MoveTo(mm(bar.CenterX) - cw/2.0, mm(bar.Y - 15.0))
			pdf.Cell(cw, 4, bar.CountLabel)
		}
	}
}

// }}}
// {{{ DrawYCaption

func DrawYCaption(pdf *gofpdf.Fpdf, l hourly.Layout) {
	w := pdf.GetStringWidth(l.YCaption)
	pdf.MoveTo(mm(l.YCaptionX) - w/2.0, mm(l.YCaptionY))
	pdf.Cell(w, 4, l.YCaption)
}

// }}}

// {{{ WriteHistogram

func WriteHistogram(output io.Writer, hd hourly.HistogramData) error {
	pdf := NewHistogramPdf()
	l := hd.Layout()

	DrawTitle(pdf, l)
	DrawAxes(pdf, l)
	DrawBars(pdf, l)
	DrawYCaption(pdf, l)

	return pdf.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}

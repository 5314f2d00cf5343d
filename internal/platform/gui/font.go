package gui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// wordFace draws every piece of text in the window.
var wordFace font.Face = basicfont.Face7x13

// faceMeasurer measures text with a font face, in pixels.
type faceMeasurer struct {
	face font.Face
}

// MeasureText implements core.TextMeasurer.
func (m faceMeasurer) MeasureText(s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}

// lineHeight returns the face's ascent plus descent in pixels.
func lineHeight(face font.Face) float64 {
	metrics := face.Metrics()
	return float64(metrics.Ascent+metrics.Descent) / 64
}

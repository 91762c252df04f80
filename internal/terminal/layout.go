package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// centeredBox keeps its content centered, sized as a share of the screen
// clamped between a minimum and maximum.
type centeredBox struct {
	*tview.Flex
	content   tview.Primitive
	minW      int
	minH      int
	maxW      int
	maxH      int
	wPercent  float64
	hPercent  float64
	lastW     int
	lastH     int
	lastInner *tview.Flex
}

func newCenteredBox(p tview.Primitive, minW, minH, maxW, maxH int, wPercent, hPercent float64) *centeredBox {
	return &centeredBox{
		Flex:     tview.NewFlex(),
		content:  p,
		minW:     minW,
		minH:     minH,
		maxW:     maxW,
		maxH:     maxH,
		wPercent: wPercent,
		hPercent: hPercent,
	}
}

func clampSize(total, min, max int, percent float64) int {
	n := int(float64(total) * percent)
	if n < min {
		n = min
	}
	if max > 0 && n > max {
		n = max
	}
	if n > total {
		n = total
	}
	return n
}

func (c *centeredBox) Draw(screen tcell.Screen) {
	_, _, w, h := c.GetRect()
	if w != c.lastW || h != c.lastH {
		boxW := clampSize(w, c.minW, c.maxW, c.wPercent)
		boxH := clampSize(h, c.minH, c.maxH, c.hPercent)
		padLeft := (w - boxW) / 2
		padTop := (h - boxH) / 2

		c.Flex.Clear()
		inner := tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, padTop, 0, false).
			AddItem(c.content, boxH, 0, true).
			AddItem(nil, h-boxH-padTop, 0, false)
		c.Flex.AddItem(nil, padLeft, 0, false).
			AddItem(inner, boxW, 0, true).
			AddItem(nil, w-boxW-padLeft, 0, false)

		c.lastW, c.lastH = w, h
	}
	c.Flex.Draw(screen)
}

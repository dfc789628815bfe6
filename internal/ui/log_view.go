package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// logView is a read-only, monospace, auto-scrolling output area. It must
// only be used from the UI goroutine.
type logView struct {
	label    *widget.Label
	scroll   *container.Scroll
	lines    []string
	maxLines int
}

func newLogView(maxLines int) *logView {
	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Monospace: true}
	label.Wrapping = fyne.TextWrapBreak

	v := &logView{
		label:    label,
		maxLines: maxLines,
	}
	v.scroll = container.NewVScroll(label)
	v.scroll.SetMinSize(fyne.NewSize(0, 200))
	return v
}

// Container returns the scrollable widget
func (v *logView) Container() fyne.CanvasObject {
	return v.scroll
}

// Append adds lines and scrolls to the bottom. The label is redrawn once
// per call, so callers batch lines that arrive together.
func (v *logView) Append(lines ...string) {
	if len(lines) == 0 {
		return
	}
	v.lines = append(v.lines, lines...)
	if v.maxLines > 0 && len(v.lines) > v.maxLines {
		v.lines = append([]string(nil), v.lines[len(v.lines)-v.maxLines:]...)
	}
	v.label.SetText(strings.Join(v.lines, "\n"))
	v.scroll.ScrollToBottom()
}

// Lines returns the retained lines
func (v *logView) Lines() []string {
	return append([]string(nil), v.lines...)
}

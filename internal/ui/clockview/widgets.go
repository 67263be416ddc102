package clockview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	minClockTextSize = float32(24)
	maxClockTextSize = float32(160)
)

func newClockText() *canvas.Text {
	text := canvas.NewText("+0:00", black)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	text.TextSize = 64
	return text
}

// tapLabel is the clickable time display.
type tapLabel struct {
	widget.BaseWidget
	text     *canvas.Text
	onTapped func()
}

func newTapLabel(text *canvas.Text, onTapped func()) *tapLabel {
	label := &tapLabel{text: text, onTapped: onTapped}
	label.ExtendBaseWidget(label)
	return label
}

func (label *tapLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(label.text)
}

func (label *tapLabel) Tapped(*fyne.PointEvent) {
	if label.onTapped != nil {
		label.onTapped()
	}
}

// stopTimeEntry reports focus changes so edits can be seeded and committed.
type stopTimeEntry struct {
	widget.Entry
	onFocus func()
	onBlur  func()
}

func newStopTimeEntry() *stopTimeEntry {
	entry := &stopTimeEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

func (entry *stopTimeEntry) FocusGained() {
	entry.Entry.FocusGained()
	if entry.onFocus != nil {
		entry.onFocus()
	}
}

func (entry *stopTimeEntry) FocusLost() {
	entry.Entry.FocusLost()
	if entry.onBlur != nil {
		entry.onBlur()
	}
}

// clockLayout centres the time text in the space above a row of controls and
// scales the text with the available width.
type clockLayout struct {
	text *canvas.Text
}

func (clock *clockLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	display := objects[0]
	controls := objects[1]

	pad := size.Height * 0.05
	controlsSize := controls.MinSize()
	controlsY := size.Height - pad - controlsSize.Height
	if controlsY < 0 {
		controlsY = 0
	}
	controls.Move(fyne.NewPos(0, controlsY))
	controls.Resize(fyne.NewSize(size.Width, controlsSize.Height))

	clock.text.TextSize = scaledTextSize(size.Width, controlsY)
	displaySize := display.MinSize()
	displayY := (controlsY - displaySize.Height) / 2
	if displayY < 0 {
		displayY = 0
	}
	display.Move(fyne.NewPos(0, displayY))
	display.Resize(fyne.NewSize(size.Width, displaySize.Height))
}

func (clock *clockLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	displaySize := objects[0].MinSize()
	controlsSize := objects[1].MinSize()
	width := displaySize.Width
	if controlsSize.Width > width {
		width = controlsSize.Width
	}
	return fyne.NewSize(width, displaySize.Height+controlsSize.Height)
}

// scaledTextSize fits roughly six monospace glyphs across the width.
func scaledTextSize(width, height float32) float32 {
	size := width / 4
	if limit := height / 2; size > limit {
		size = limit
	}
	if size < minClockTextSize {
		return minClockTextSize
	}
	if size > maxClockTextSize {
		return maxClockTextSize
	}
	return size
}

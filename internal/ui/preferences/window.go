package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"tapclock/internal/core/sign"
	"tapclock/internal/core/timefmt"
)

const (
	optionCountDown = "Count down first"
	optionCountUp   = "Count up first"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	stopTime  *widget.Entry
	direction *widget.RadioGroup
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("tapclock Settings")

	stopTime := widget.NewEntry()
	stopTime.SetPlaceHolder("M:SS or infinity")

	direction := widget.NewRadioGroup([]string{optionCountDown, optionCountUp}, nil)
	direction.Required = true

	form := container.NewVBox(
		widget.NewLabelWithStyle("Defaults", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Stop time"),
		stopTime,
		widget.NewLabel("After reset"),
		direction,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 260))

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		stopTime:  stopTime,
		direction: direction,
	}
	prefs.UpdateSettings(settings)
	saveButton.OnTapped = prefs.handleSave

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.stopTime.SetText(timefmt.Format(settings.StopTime))
	if settings.StartSign > 0 {
		prefs.direction.SetSelected(optionCountUp)
	} else {
		prefs.direction.SetSelected(optionCountDown)
	}
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if stopTime, err := timefmt.Parse(prefs.stopTime.Text); err == nil && stopTime > 0 {
		settings.StopTime = stopTime
	}
	settings.StartSign = sign.Negative
	if prefs.direction.Selected == optionCountUp {
		settings.StartSign = sign.Positive
	}

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

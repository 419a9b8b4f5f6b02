package views

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/berrythewa/cliplate/pkg/format"
)

// MainView is the translation text box with its Speak button and count label.
// Methods must be called on the fyne UI goroutine.
type MainView struct {
	// UI components
	entry      *widget.Entry
	speakBtn   *widget.Button
	countLabel *widget.Label
	content    fyne.CanvasObject

	// State
	mu      sync.RWMutex
	text    string
	onSpeak func()
}

// NewMainView creates the main view. onSpeak runs when Speak is pressed.
func NewMainView(onSpeak func()) *MainView {
	view := &MainView{onSpeak: onSpeak}
	view.createUI()
	return view
}

func (v *MainView) createUI() {
	v.entry = widget.NewMultiLineEntry()
	v.entry.Wrapping = fyne.TextWrapWord
	v.entry.SetPlaceHolder("Copy some text to translate it")
	// read-only: user edits are reverted, selection and copy still work
	v.entry.OnChanged = func(s string) {
		if current := v.Text(); s != current {
			v.entry.SetText(current)
		}
	}

	v.speakBtn = widget.NewButtonWithIcon("Speak", theme.VolumeUpIcon(), func() {
		if v.onSpeak != nil {
			v.onSpeak()
		}
	})

	v.countLabel = widget.NewLabel(format.CountLabel(""))
	v.countLabel.Alignment = fyne.TextAlignTrailing

	v.content = container.NewBorder(
		nil, // top
		container.NewBorder(nil, nil, v.speakBtn, nil, v.countLabel), // bottom
		nil,     // left
		nil,     // right
		v.entry, // center
	)
}

// GetContent returns the view's root object
func (v *MainView) GetContent() fyne.CanvasObject {
	return v.content
}

// SetText replaces the displayed text and updates the count label
func (v *MainView) SetText(text string) {
	v.mu.Lock()
	v.text = text
	v.mu.Unlock()

	v.entry.SetText(text)
	v.countLabel.SetText(format.CountLabel(text))
}

// Text returns the displayed text
func (v *MainView) Text() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text
}

// CountText returns the count label's text
func (v *MainView) CountText() string {
	return v.countLabel.Text
}

// SetSpeaking disables the Speak button while audio plays
func (v *MainView) SetSpeaking(speaking bool) {
	if speaking {
		v.speakBtn.Disable()
	} else {
		v.speakBtn.Enable()
	}
}

// Refresh redraws the text after a font change
func (v *MainView) Refresh() {
	v.entry.Refresh()
	v.countLabel.Refresh()
}

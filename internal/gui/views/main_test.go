package views

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestMainView_SetText(t *testing.T) {
	test.NewTempApp(t)
	view := NewMainView(nil)
	test.NewTempWindow(t, view.GetContent())

	assert.Equal(t, "L: 1 C: 0", view.CountText())

	view.SetText("olá\nmundo")
	assert.Equal(t, "olá\nmundo", view.Text())
	assert.Equal(t, "olá\nmundo", view.entry.Text)
	assert.Equal(t, "L: 2 C: 9", view.CountText())
}

func TestMainView_ReadOnly(t *testing.T) {
	test.NewTempApp(t)
	view := NewMainView(nil)
	test.NewTempWindow(t, view.GetContent())

	view.SetText("gato")
	test.Type(view.entry, "!")

	assert.Equal(t, "gato", view.entry.Text)
	assert.Equal(t, "L: 1 C: 4", view.CountText())
}

func TestMainView_Speak(t *testing.T) {
	test.NewTempApp(t)
	pressed := 0
	view := NewMainView(func() { pressed++ })
	test.NewTempWindow(t, view.GetContent())

	test.Tap(view.speakBtn)
	assert.Equal(t, 1, pressed)

	view.SetSpeaking(true)
	test.Tap(view.speakBtn)
	assert.Equal(t, 1, pressed, "disabled button ignores taps")

	view.SetSpeaking(false)
	test.Tap(view.speakBtn)
	assert.Equal(t, 2, pressed)
}

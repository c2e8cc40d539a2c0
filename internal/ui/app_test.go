package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseHandlerStopsReplayBeforeRelease(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ctl, _, _, p := newTestBoard(t)
	addStroke(ctl)
	ctl.Replay()
	require.True(t, ctl.Replaying())

	released := 0
	closeHandler(ctl, func() {
		assert.False(t, ctl.Replaying())
		released++
	})()

	assert.Equal(t, 1, released)
	assert.Equal(t, 1, p.stops)
}

func TestCloseHandlerWithoutRelease(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ctl, _, _, _ := newTestBoard(t)
	assert.NotPanics(t, closeHandler(ctl, nil))
}

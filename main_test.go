package main

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roomdrive/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGameClosesWatcherOnError(t *testing.T) {
	w, err := prefabs.NewWatcher(t.TempDir())
	require.NoError(t, err)
	g := &Game{watcher: w}

	boom := errors.New("window lost")
	err = runGame(g, func(ebiten.Game) error { return boom })
	assert.ErrorIs(t, err, boom)

	_, open := <-w.Events
	assert.False(t, open, "watcher is closed")
}

package cmd

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestWatchLoopRunsAfterChange(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	quit := make(chan os.Signal)
	var runs int32
	done := make(chan struct{})

	go func() {
		watchLoop("song.mid", 10*time.Millisecond, events, errs, quit, func() {
			atomic.AddInt32(&runs, 1)
		})
		close(done)
	}()

	events <- fsnotify.Event{Name: "other.mid", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "song.mid", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "song.mid", Op: fsnotify.Write}
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) == 1 }, time.Second, 5*time.Millisecond)

	close(quit)
	<-done
}

func TestWatchLoopDropsPendingRunOnQuit(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	quit := make(chan os.Signal)
	var runs int32
	done := make(chan struct{})

	go func() {
		watchLoop("song.mid", 50*time.Millisecond, events, errs, quit, func() {
			atomic.AddInt32(&runs, 1)
		})
		close(done)
	}()

	events <- fsnotify.Event{Name: "song.mid", Op: fsnotify.Write}
	close(quit)
	<-done

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&runs))
}

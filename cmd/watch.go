package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	watchParams model.Params
	watchDelay  time.Duration
)

func init() {
	addParamFlags(watchCmd.Flags(), &watchParams)
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 250*time.Millisecond, "wait this long after the last change before analyzing")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file.mid>",
	Short: "Analyzes a MIDI file every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch(cmd, args[0])
	},
}

func watch(cmd *cobra.Command, path string) error {
	path = filepath.Clean(path)
	run := func() {
		if err := analyze(cmd, path, watchParams, false); err != nil {
			logrus.Errorf("Could not analyze %v: %v", path, err)
		}
	}
	run()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer watcher.Close()

	// editors often replace the file instead of writing it, so watch the dir
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watching %v", path)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	defer signal.Stop(quit)

	logrus.Infof("Watching %v", path)
	watchLoop(path, watchDelay, watcher.Events, watcher.Errors, quit, run)
	return nil
}

// watchLoop calls run, debounced by delay, whenever path is written or
// created, until quit fires or the watcher closes. No run starts after
// watchLoop returns.
func watchLoop(path string, delay time.Duration, events <-chan fsnotify.Event, errs <-chan error, quit <-chan os.Signal, run func()) {
	debounced := debounce.New(delay)
	// replace any pending run with a no-op
	defer debounced(func() {})

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logrus.Debugf("%v changed: %v", path, ev.Op)
				debounced(run)
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			logrus.Warnf("watch error: %v", err)
		case <-quit:
			return
		}
	}
}

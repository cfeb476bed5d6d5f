package cliui

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// progressSteps fixes the number of increments in the fake progress bar.
const progressSteps = 50

// ShowProgress renders a duration-driven progress animation labeled with
// label. The bar carries no real work: it steps through a fixed number of
// increments spread over roughly duration. With animation off it prints a
// single completed line instead.
func (u *UI) ShowProgress(label string, duration time.Duration) {
	if !u.cfg.Animation {
		fmt.Fprintf(u.out, "%s: 100%%\n", label)
		return
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(u.out)
	pw.SetAutoStop(true)
	pw.SetNumTrackersExpected(1)
	pw.SetTrackerLength(u.cfg.ProgressWidth)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(duration / progressSteps)
	pw.SetStyle(progress.StyleBlocks)
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Time = false
	pw.Style().Visibility.Value = false
	pw.Style().Visibility.Speed = false
	if !u.colors {
		pw.Style().Colors = progress.StyleColors{}
	}

	tracker := &progress.Tracker{Message: label, Total: progressSteps}
	pw.AppendTracker(tracker)

	go pw.Render()

	step := duration / progressSteps
	for i := 0; i < progressSteps; i++ {
		time.Sleep(step)
		tracker.Increment(1)
	}
	tracker.MarkAsDone()

	for pw.IsRenderInProgress() {
		time.Sleep(5 * time.Millisecond)
	}
}

// Package sched provides FrameScheduler implementations. The ingestion
// pipeline waits on one between batches so the webview gets a rendering
// frame before parsing resumes.
package sched

import (
	"context"
	"time"
)

// DefaultFrameInterval approximates one frame at 60fps.
const DefaultFrameInterval = 16 * time.Millisecond

// Frame paces callers to a fixed frame interval.
type Frame struct {
	Interval time.Duration
}

func NewFrame(interval time.Duration) *Frame {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Frame{Interval: interval}
}

func (f *Frame) Wait(ctx context.Context) error {
	t := time.NewTimer(f.Interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Immediate never blocks. Used in tests and headless runs.
type Immediate struct{}

func (Immediate) Wait(ctx context.Context) error { return ctx.Err() }

package ports

import "context"

// Emitter publishes named events to the UI layer.
type Emitter interface {
	Emit(name string, payload any)
}

// FrameScheduler yields control back to the rendering loop between
// ingestion batches, the desktop equivalent of awaiting the next animation
// frame. Wait returns once one frame has had a chance to render, or early
// with ctx's error when the context is canceled.
type FrameScheduler interface {
	Wait(ctx context.Context) error
}

package observer

import (
	"context"
	"log/slog"
)

// Hook describes how to derive an observer event from one operation.
// Extractors receive the operation's input and output; Metadata additionally
// receives the error so failures can be annotated.
type Hook[Req, Res any] struct {
	Type EventType

	UserID        func(req Req, res Res) string
	RelatedUserID func(req Req, res Res) string
	CircleID      func(req Req, res Res) string
	Metadata      func(req Req, res Res, err error) map[string]any

	// EmitOnError emits an event even when the operation failed. The
	// error string is added to the metadata.
	EmitOnError bool
}

// Instrument wraps op so every call emits one observer event after op
// returns. The wrapper never alters op's results, never swallows its error,
// and never panics: a panicking extractor is recovered and the event is
// dropped.
func Instrument[Req, Res any](bus *Bus, hook Hook[Req, Res], op func(context.Context, Req) (Res, error)) func(context.Context, Req) (Res, error) {
	return func(ctx context.Context, req Req) (Res, error) {
		res, err := op(ctx, req)
		emitHook(bus, hook, req, res, err)
		return res, err
	}
}

func emitHook[Req, Res any](bus *Bus, hook Hook[Req, Res], req Req, res Res, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Observer hook panicked, event dropped", "event_type", hook.Type, "panic", r)
		}
	}()

	if err != nil && !hook.EmitOnError {
		return
	}

	ev := NewEvent(hook.Type, "")
	if hook.UserID != nil {
		ev.UserID = hook.UserID(req, res)
	}
	if hook.RelatedUserID != nil {
		ev.RelatedUserID = hook.RelatedUserID(req, res)
	}
	if hook.CircleID != nil {
		ev.CircleID = hook.CircleID(req, res)
	}
	if hook.Metadata != nil {
		ev.Metadata = hook.Metadata(req, res, err)
	}
	if err != nil {
		if ev.Metadata == nil {
			ev.Metadata = make(map[string]any, 1)
		}
		ev.Metadata["error"] = err.Error()
	}
	bus.Emit(ev)
}

package transport

import (
	"context"
	"log/slog"

	"privacyprefs/internal/common"
	"privacyprefs/internal/domain/preferences"
	"privacyprefs/internal/navigation"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// EmitFunc matches wailsruntime.EventsEmit
type EmitFunc func(ctx context.Context, eventName string, optionalData ...interface{})

// WailsHost forwards navigation and results from settings screens to the
// frontend as Wails events
type WailsHost struct {
	ctx    context.Context
	stack  *navigation.BackStack
	logger *slog.Logger
	emit   EmitFunc
}

// NewWailsHost creates a host that emits through the Wails runtime
func NewWailsHost(ctx context.Context, stack *navigation.BackStack, logger *slog.Logger) *WailsHost {
	return &WailsHost{
		ctx:    ctx,
		stack:  stack,
		logger: logger,
		emit:   wailsruntime.EventsEmit,
	}
}

// OpenSubscreen pushes id on the back stack and tells the frontend to show it
func (h *WailsHost) OpenSubscreen(id string) {
	entry := h.stack.Push(id)
	h.logger.Debug("Opening subscreen", "screen", id, "entry_id", entry.ID)
	h.emit(h.ctx, common.EventNavigationPush, entry)
}

// Back pops the top subscreen. It returns false when nothing was open.
func (h *WailsHost) Back() bool {
	entry, ok := h.stack.Pop()
	if !ok {
		return false
	}
	h.emit(h.ctx, common.EventNavigationPop, entry)
	return true
}

// ReportResult sends the screen's result to the frontend
func (h *WailsHost) ReportResult(code preferences.ResultCode, payload string) {
	h.logger.Info("Reporting result to host", "code", int(code), "payload", payload)
	h.emit(h.ctx, common.EventPrivacyResult, ResultMessage{Code: int(code), Payload: payload})
}

//go:build !windows

package anchor

import (
	"fmt"

	"github.com/lixenwraith/vi-pet/core"
)

// SystemSource has no shell to ask outside Windows
// Every query fails so the tracker runs on its configured fallback display
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (SystemSource) TaskbarRect() (core.Rect, error) {
	return core.Rect{}, fmt.Errorf("%w: %w", ErrAnchorQueryFailed, ErrUnsupported)
}

func (SystemSource) Display() (core.Rect, core.Rect, error) {
	return core.Rect{}, core.Rect{}, fmt.Errorf("%w: %w", ErrAnchorQueryFailed, ErrUnsupported)
}

// HookWatcher cannot install a shell hook outside Windows
type HookWatcher struct{}

func NewHookWatcher() *HookWatcher {
	return &HookWatcher{}
}

func (HookWatcher) Watch(func()) (func(), error) {
	return nil, fmt.Errorf("%w: %w", ErrHookInstallFailed, ErrUnsupported)
}

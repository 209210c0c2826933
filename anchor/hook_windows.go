//go:build windows

package anchor

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/lixenwraith/vi-pet/core"
)

const (
	eventObjectLocationChange = 0x800B
	wineventOutOfContext      = 0x0000
	objidWindow               = 0
	wmQuit                    = 0x0012
)

// MSG
type winMsg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// HookWatcher subscribes to taskbar move/resize events through SetWinEventHook
//
// The hook lives on a dedicated locked OS thread running its own message
// pump. The callback executes on that thread, never on the owner loop, so
// it only calls notify.
type HookWatcher struct{}

func NewHookWatcher() *HookWatcher {
	return &HookWatcher{}
}

func (HookWatcher) Watch(notify func()) (func(), error) {
	ready := make(chan error, 1)
	var threadID uint32

	core.Go(func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		bar := findTaskbar()
		if bar == 0 {
			ready <- fmt.Errorf("%w: %s window not found", ErrHookInstallFailed, taskbarClass)
			return
		}
		var pid uint32
		barThread, _, _ := procGetWindowThreadProcessId.Call(bar, uintptr(unsafe.Pointer(&pid)))
		if barThread == 0 {
			ready <- fmt.Errorf("%w: taskbar thread unknown", ErrHookInstallFailed)
			return
		}

		cb := windows.NewCallback(func(hook, event, hwnd, idObject, idChild, thread, ts uintptr) uintptr {
			if hwnd == bar && int32(idObject) == objidWindow {
				notify()
			}
			return 0
		})

		hook, _, err := procSetWinEventHook.Call(
			eventObjectLocationChange, eventObjectLocationChange,
			0, cb,
			uintptr(pid), barThread,
			wineventOutOfContext,
		)
		if hook == 0 {
			ready <- fmt.Errorf("%w: SetWinEventHook: %v", ErrHookInstallFailed, err)
			return
		}
		defer procUnhookWinEvent.Call(hook)

		threadID = windows.GetCurrentThreadId()
		ready <- nil

		var m winMsg
		for {
			r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
			if int32(r) <= 0 { // WM_QUIT or error
				return
			}
			procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
			procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
		}
	})

	if err := <-ready; err != nil {
		return nil, err
	}

	stop := sync.OnceFunc(func() {
		procPostThreadMessageW.Call(uintptr(threadID), wmQuit, 0, 0)
	})
	return stop, nil
}

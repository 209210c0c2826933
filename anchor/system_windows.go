//go:build windows

package anchor

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/lixenwraith/vi-pet/core"
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")

	procSHAppBarMessage = shell32.NewProc("SHAppBarMessage")

	procFindWindowW              = user32.NewProc("FindWindowW")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procEnumDisplayMonitors      = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW          = user32.NewProc("GetMonitorInfoW")

	procSetWinEventHook    = user32.NewProc("SetWinEventHook")
	procUnhookWinEvent     = user32.NewProc("UnhookWinEvent")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

const (
	abmGetTaskbarPos   = 0x00000005
	monitorInfoPrimary = 0x00000001
	taskbarClass       = "Shell_TrayWnd"
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

func (r winRect) rect() core.Rect {
	return core.Rect{Left: int(r.Left), Top: int(r.Top), Right: int(r.Right), Bottom: int(r.Bottom)}
}

// APPBARDATA
type appBarData struct {
	CbSize           uint32
	HWnd             uintptr
	UCallbackMessage uint32
	UEdge            uint32
	Rc               winRect
	LParam           uintptr
}

// MONITORINFO
type monitorInfo struct {
	Size    uint32
	Monitor winRect
	Work    winRect
	Flags   uint32
}

// SystemSource queries the Windows shell for the taskbar and primary display
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

// TaskbarRect asks the app-bar API first, then the taskbar window itself
func (SystemSource) TaskbarRect() (core.Rect, error) {
	data := appBarData{}
	data.CbSize = uint32(unsafe.Sizeof(data))
	if r, _, _ := procSHAppBarMessage.Call(abmGetTaskbarPos, uintptr(unsafe.Pointer(&data))); r != 0 {
		if rect := data.Rc.rect(); !rect.Empty() {
			return rect, nil
		}
	}

	hwnd := findTaskbar()
	if hwnd == 0 {
		return core.Rect{}, fmt.Errorf("%w: %s window not found", ErrAnchorQueryFailed, taskbarClass)
	}
	var wr winRect
	if r, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&wr))); r == 0 {
		return core.Rect{}, fmt.Errorf("%w: GetWindowRect: %v", ErrAnchorQueryFailed, err)
	}
	return wr.rect(), nil
}

// primaryMonitor collects the EnumDisplayMonitors result
type primaryMonitor struct {
	found        bool
	screen, work core.Rect
}

// monitorSlot receives the enumeration result; monitorMu is held for the
// whole synchronous EnumDisplayMonitors call
var (
	monitorMu   sync.Mutex
	monitorSlot primaryMonitor
)

// enumMonitorProc is created once; callbacks from NewCallback are never released
var enumMonitorProc = windows.NewCallback(func(hMonitor, hdc, lprc, lparam uintptr) uintptr {
	pm := &monitorSlot
	var mi monitorInfo
	mi.Size = uint32(unsafe.Sizeof(mi))
	if r, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi))); r != 0 && mi.Flags&monitorInfoPrimary != 0 {
		pm.screen, pm.work, pm.found = mi.Monitor.rect(), mi.Work.rect(), true
		return 0 // Stop enumeration
	}
	return 1
})

// Display enumerates monitors and returns the primary one
func (SystemSource) Display() (core.Rect, core.Rect, error) {
	monitorMu.Lock()
	monitorSlot = primaryMonitor{}
	procEnumDisplayMonitors.Call(0, 0, enumMonitorProc, 0)
	pm := monitorSlot
	monitorMu.Unlock()

	if !pm.found {
		return core.Rect{}, core.Rect{}, fmt.Errorf("%w: no primary monitor", ErrAnchorQueryFailed)
	}
	return pm.screen, pm.work, nil
}

func findTaskbar() uintptr {
	class, err := windows.UTF16PtrFromString(taskbarClass)
	if err != nil {
		return 0
	}
	hwnd, _, _ := procFindWindowW.Call(uintptr(unsafe.Pointer(class)), 0)
	return hwnd
}

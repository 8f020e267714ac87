package testutil

import (
	"fmt"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/interfaces"
)

// FakeWindow is the state of one window in a FakeDesktop
type FakeWindow struct {
	Handle    desktop.Handle
	Title     string
	ClassName string
	PID       uint32
	Visible   bool
	Minimized bool
	Maximized bool
	Topmost   bool

	Outer desktop.Rect
	// Shadow is the padding between Outer and the visual frame
	Shadow desktop.FramePadding

	Monitor desktop.MonitorInfo

	TitleErr   error
	ClassErr   error
	PidErr     error
	FrameErr   error
	MonitorErr error

	MessageIcons map[desktop.MessageIconKind]desktop.IconHandle
	ClassIcons   map[desktop.ClassIconKind]desktop.IconHandle
	IconErrs     map[string]error
}

// Frame returns the visual frame implied by Outer and Shadow
func (w *FakeWindow) Frame() desktop.Rect {
	return desktop.Rect{
		Left:   w.Outer.Left + w.Shadow.Left,
		Top:    w.Outer.Top + w.Shadow.Top,
		Right:  w.Outer.Right - w.Shadow.Right,
		Bottom: w.Outer.Bottom - w.Shadow.Bottom,
	}
}

// SetPositionCall records one SetPosition invocation
type SetPositionCall struct {
	Hwnd desktop.Handle
	X, Y int
}

// ShowCall records one Show invocation
type ShowCall struct {
	Hwnd    desktop.Handle
	Command desktop.ShowCommand
}

// TopmostCall records one SetTopmost invocation
type TopmostCall struct {
	Hwnd    desktop.Handle
	Topmost bool
}

// FakeDesktop implements interfaces.Desktop in memory and records calls
type FakeDesktop struct {
	Windows map[desktop.Handle]*FakeWindow
	Order   []desktop.Handle

	DefaultMonitor desktop.MonitorInfo

	EnumerateErr     error
	SetPositionErr   error
	NotifyErr        error
	ShowErr          error
	TopmostErr       error
	CloseErr         error
	ForegroundResult bool

	Bitmap       desktop.Bitmap
	RasterizeErr error

	// Events is the ordered log of mutating calls, e.g. "move-begin:0x10"
	Events           []string
	SetPositionCalls []SetPositionCall
	ShowCalls        []ShowCall
	ForegroundCalls  []desktop.Handle
	TopmostCalls     []TopmostCall
	CloseCalls       []desktop.Handle
	IconQueries      []string
	RasterizeCalls   []desktop.IconHandle
	EnumerateCalls   int
}

var _ interfaces.Desktop = (*FakeDesktop)(nil)

// NewFakeDesktop creates an empty desktop with one 1920x1080 monitor whose
// work area reserves 40px at the bottom
func NewFakeDesktop() *FakeDesktop {
	return &FakeDesktop{
		Windows: make(map[desktop.Handle]*FakeWindow),
		DefaultMonitor: desktop.MonitorInfo{
			FullBounds: desktop.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
			WorkArea:   desktop.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1040},
		},
		ForegroundResult: true,
	}
}

// WithWindow adds a visible window. The window inherits the default monitor.
func (d *FakeDesktop) WithWindow(h desktop.Handle, title, className string, outer desktop.Rect) *FakeDesktop {
	d.Windows[h] = &FakeWindow{
		Handle:       h,
		Title:        title,
		ClassName:    className,
		PID:          uint32(h),
		Visible:      true,
		Outer:        outer,
		Monitor:      d.DefaultMonitor,
		MessageIcons: map[desktop.MessageIconKind]desktop.IconHandle{},
		ClassIcons:   map[desktop.ClassIconKind]desktop.IconHandle{},
		IconErrs:     map[string]error{},
	}
	d.Order = append(d.Order, h)

	return d
}

// WithMonitor replaces the default monitor for windows added afterwards
func (d *FakeDesktop) WithMonitor(full, work desktop.Rect) *FakeDesktop {
	d.DefaultMonitor = desktop.MonitorInfo{FullBounds: full, WorkArea: work}
	return d
}

// Window returns the fake window for h and panics when it is unknown, which
// is a test bug.
func (d *FakeDesktop) Window(h desktop.Handle) *FakeWindow {
	w, ok := d.Windows[h]
	if !ok {
		panic(fmt.Sprintf("testutil: unknown window %s", h))
	}

	return w
}

// Close removes a window as if it had been destroyed
func (d *FakeDesktop) Close(h desktop.Handle) {
	delete(d.Windows, h)
}

func (d *FakeDesktop) record(event string, h desktop.Handle) {
	d.Events = append(d.Events, event+":"+h.String())
}

func (d *FakeDesktop) lookup(h desktop.Handle) (*FakeWindow, error) {
	w, ok := d.Windows[h]
	if !ok {
		return nil, fmt.Errorf("window %s: %w", h, desktop.ErrHandleInvalid)
	}

	return w, nil
}

// WindowSource

func (d *FakeDesktop) IsWindow(h desktop.Handle) bool {
	_, ok := d.Windows[h]
	return ok
}

func (d *FakeDesktop) EnumerateWindows() ([]desktop.Handle, error) {
	d.EnumerateCalls++
	if d.EnumerateErr != nil {
		return nil, d.EnumerateErr
	}

	// Order keeps handles of closed windows so stale entries are exercised
	handles := make([]desktop.Handle, len(d.Order))
	copy(handles, d.Order)

	return handles, nil
}

func (d *FakeDesktop) IsVisible(h desktop.Handle) bool {
	w, ok := d.Windows[h]
	return ok && w.Visible
}

func (d *FakeDesktop) WindowText(h desktop.Handle) (string, error) {
	w, err := d.lookup(h)
	if err != nil {
		return "", err
	}

	return w.Title, w.TitleErr
}

func (d *FakeDesktop) ClassName(h desktop.Handle) (string, error) {
	w, err := d.lookup(h)
	if err != nil {
		return "", err
	}

	return w.ClassName, w.ClassErr
}

func (d *FakeDesktop) ProcessID(h desktop.Handle) (uint32, error) {
	w, err := d.lookup(h)
	if err != nil {
		return 0, err
	}

	return w.PID, w.PidErr
}

// GeometryReader

func (d *FakeDesktop) OuterRect(h desktop.Handle) (desktop.Rect, error) {
	w, err := d.lookup(h)
	if err != nil {
		return desktop.Rect{}, err
	}

	return w.Outer, nil
}

func (d *FakeDesktop) VisualFrameRect(h desktop.Handle) (desktop.Rect, error) {
	w, err := d.lookup(h)
	if err != nil {
		return desktop.Rect{}, err
	}

	if w.FrameErr != nil {
		return desktop.Rect{}, w.FrameErr
	}

	return w.Frame(), nil
}

func (d *FakeDesktop) MonitorInfo(h desktop.Handle) (desktop.MonitorInfo, error) {
	w, err := d.lookup(h)
	if err != nil {
		return desktop.MonitorInfo{}, err
	}

	return w.Monitor, w.MonitorErr
}

// WindowMover

func (d *FakeDesktop) SetPosition(h desktop.Handle, x, y int) error {
	d.record("set-position", h)
	d.SetPositionCalls = append(d.SetPositionCalls, SetPositionCall{Hwnd: h, X: x, Y: y})

	w, err := d.lookup(h)
	if err != nil {
		return err
	}

	if d.SetPositionErr != nil {
		return d.SetPositionErr
	}

	width, height := w.Outer.Width(), w.Outer.Height()
	w.Outer = desktop.Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}

	return nil
}

func (d *FakeDesktop) NotifyMoveBegin(h desktop.Handle) error {
	d.record("move-begin", h)
	return d.NotifyErr
}

func (d *FakeDesktop) NotifyMoveEnd(h desktop.Handle) error {
	d.record("move-end", h)
	return d.NotifyErr
}

// StateSetter

func (d *FakeDesktop) IsMinimized(h desktop.Handle) bool {
	w, ok := d.Windows[h]
	return ok && w.Minimized
}

func (d *FakeDesktop) Show(h desktop.Handle, cmd desktop.ShowCommand) error {
	d.record("show-"+cmd.String(), h)
	d.ShowCalls = append(d.ShowCalls, ShowCall{Hwnd: h, Command: cmd})

	w, err := d.lookup(h)
	if err != nil {
		return err
	}

	if d.ShowErr != nil {
		return d.ShowErr
	}

	switch cmd {
	case desktop.ShowRestore:
		w.Minimized, w.Maximized = false, false
	case desktop.ShowMinimize:
		w.Minimized = true
	case desktop.ShowMaximize:
		w.Minimized, w.Maximized = false, true
	}

	return nil
}

func (d *FakeDesktop) RequestForeground(h desktop.Handle) bool {
	d.record("foreground", h)
	d.ForegroundCalls = append(d.ForegroundCalls, h)

	return d.ForegroundResult
}

func (d *FakeDesktop) SetTopmost(h desktop.Handle, topmost bool) error {
	d.record("topmost", h)
	d.TopmostCalls = append(d.TopmostCalls, TopmostCall{Hwnd: h, Topmost: topmost})

	w, err := d.lookup(h)
	if err != nil {
		return err
	}

	if d.TopmostErr != nil {
		return d.TopmostErr
	}

	w.Topmost = topmost
	return nil
}

func (d *FakeDesktop) PostClose(h desktop.Handle) error {
	d.record("close", h)
	d.CloseCalls = append(d.CloseCalls, h)

	return d.CloseErr
}

// IconReader

func (d *FakeDesktop) MessageIcon(h desktop.Handle, kind desktop.MessageIconKind) (desktop.IconHandle, error) {
	name := fmt.Sprintf("message-%d", kind)
	d.IconQueries = append(d.IconQueries, name)

	w, err := d.lookup(h)
	if err != nil {
		return 0, err
	}

	if err := w.IconErrs[name]; err != nil {
		return 0, err
	}

	return w.MessageIcons[kind], nil
}

func (d *FakeDesktop) ClassIcon(h desktop.Handle, kind desktop.ClassIconKind) (desktop.IconHandle, error) {
	name := fmt.Sprintf("class-%d", kind)
	d.IconQueries = append(d.IconQueries, name)

	w, err := d.lookup(h)
	if err != nil {
		return 0, err
	}

	if err := w.IconErrs[name]; err != nil {
		return 0, err
	}

	return w.ClassIcons[kind], nil
}

func (d *FakeDesktop) Rasterize(icon desktop.IconHandle, size int) (desktop.Bitmap, error) {
	d.RasterizeCalls = append(d.RasterizeCalls, icon)
	if d.RasterizeErr != nil {
		return desktop.Bitmap{}, d.RasterizeErr
	}

	if d.Bitmap.Pix != nil {
		return d.Bitmap, nil
	}

	return SolidBitmap(size, size, 0x30, 0x60, 0x90), nil
}

// SolidBitmap builds a bottom-up BGRX bitmap filled with one colour
func SolidBitmap(width, height int, r, g, b byte) desktop.Bitmap {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = b, g, r, 0
	}

	return desktop.Bitmap{Width: width, Height: height, Pix: pix, BottomUp: true}
}

// FakeProcesses implements interfaces.ProcessNamer from a pid table
type FakeProcesses map[uint32]string

func (p FakeProcesses) ProcessName(pid uint32) (string, error) {
	name, ok := p[pid]
	if !ok {
		return "", fmt.Errorf("process %d not found", pid)
	}

	return name, nil
}

//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/timeouts"
)

// iconReader queries window icons and draws them with GDI
type iconReader struct {
	log logger.LoggerInterface
}

func newIconReader(log logger.LoggerInterface) *iconReader {
	return &iconReader{log: log}
}

// MessageIcon asks the window for its icon with WM_GETICON. A hung window
// times out instead of blocking.
func (r *iconReader) MessageIcon(hwnd uintptr, kind desktop.MessageIconKind) (desktop.IconHandle, error) {
	var result uintptr

	ret, _, err := procSendMessageTimeoutW.Call(
		hwnd,
		WM_GETICON,
		uintptr(kind),
		0,
		SMTO_ABORTIFHUNG,
		uintptr(timeouts.MessageTimeout.Milliseconds()),
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		return 0, fmt.Errorf("WM_GETICON %d failed: %w", kind, err)
	}

	return desktop.IconHandle(result), nil
}

// ClassIcon reads an icon registered with the window class
func (r *iconReader) ClassIcon(hwnd uintptr, kind desktop.ClassIconKind) (desktop.IconHandle, error) {
	index := int32(GCLP_HICON)
	if kind == desktop.ClassIconSmall {
		index = GCLP_HICONSM
	}

	proc := procGetClassLongPtrW
	if runtime.GOARCH == "386" {
		// 32-bit user32 only exports GetClassLongW
		proc = procGetClassLongW
	}

	ret, _, err := proc.Call(hwnd, uintptr(index))
	if ret == 0 && !isSuccess(err) {
		return 0, fmt.Errorf("GetClassLongPtr %d failed: %w", index, err)
	}

	return desktop.IconHandle(ret), nil
}

// Rasterize draws the icon into a size x size 32-bit bitmap and reads the
// pixels back bottom-up. Every GDI object is released on every path.
func (r *iconReader) Rasterize(icon desktop.IconHandle, size int) (desktop.Bitmap, error) {
	if size <= 0 {
		return desktop.Bitmap{}, fmt.Errorf("%w: raster size %d", desktop.ErrInvalidArgument, size)
	}

	screen, _, _ := procGetDC.Call(0)
	if screen == 0 {
		return desktop.Bitmap{}, fmt.Errorf("GetDC: %w", desktop.ErrResourceExhausted)
	}
	defer procReleaseDC.Call(0, screen)

	memDC, _, _ := procCreateCompatibleDC.Call(screen)
	if memDC == 0 {
		return desktop.Bitmap{}, fmt.Errorf("CreateCompatibleDC: %w", desktop.ErrResourceExhausted)
	}
	defer procDeleteDC.Call(memDC)

	bitmap, _, _ := procCreateCompatibleBitmap.Call(screen, uintptr(size), uintptr(size))
	if bitmap == 0 {
		return desktop.Bitmap{}, fmt.Errorf("CreateCompatibleBitmap: %w", desktop.ErrResourceExhausted)
	}
	defer procDeleteObject.Call(bitmap)

	old, _, _ := procSelectObject.Call(memDC, bitmap)
	if old == 0 {
		return desktop.Bitmap{}, fmt.Errorf("SelectObject: %w", desktop.ErrResourceExhausted)
	}

	ret, _, err := procDrawIconEx.Call(memDC, 0, 0, uintptr(icon), uintptr(size), uintptr(size), 0, 0, DI_NORMAL)

	// the bitmap must be deselected before GetDIBits reads it
	procSelectObject.Call(memDC, old)

	if ret == 0 {
		return desktop.Bitmap{}, fmt.Errorf("DrawIconEx failed: %w", err)
	}

	bmi := BITMAPINFO{
		BmiHeader: BITMAPINFOHEADER{
			BiSize:        uint32(unsafe.Sizeof(BITMAPINFOHEADER{})),
			BiWidth:       int32(size),
			BiHeight:      int32(size), // positive: bottom-up rows
			BiPlanes:      1,
			BiBitCount:    32,
			BiCompression: BI_RGB,
		},
	}

	pix := make([]byte, size*size*4)

	lines, _, _ := procGetDIBits.Call(
		memDC,
		bitmap,
		0,
		uintptr(size),
		uintptr(unsafe.Pointer(&pix[0])),
		uintptr(unsafe.Pointer(&bmi)),
		DIB_RGB_COLORS,
	)
	if int(lines) != size {
		r.log.Trace("GetDIBits copied fewer lines", slog.Int("lines", int(lines)), slog.Int("want", size))
		return desktop.Bitmap{}, fmt.Errorf("GetDIBits copied %d of %d lines", lines, size)
	}

	return desktop.Bitmap{Width: size, Height: size, Pix: pix, BottomUp: true}, nil
}

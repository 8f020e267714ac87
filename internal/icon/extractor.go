// Package icon resolves a window's icon through an ordered chain of sources
// and renders it as a small RGBA image.
package icon

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/interfaces"
	"github.com/Norgate-AV/wincenter/internal/logger"
)

// RasterSize is the edge length icons are drawn at before resampling
const RasterSize = 32

// Source resolves one kind of icon for a window. A zero handle means the
// window has no icon of that kind.
type Source struct {
	Name    string
	Resolve func(h desktop.Handle) (desktop.IconHandle, error)
}

// DefaultSources returns the lookup chain: the icons the window reports
// about itself from smallest to largest, then the icons of its class.
func DefaultSources(r interfaces.IconReader) []Source {
	message := func(kind desktop.MessageIconKind) func(desktop.Handle) (desktop.IconHandle, error) {
		return func(h desktop.Handle) (desktop.IconHandle, error) { return r.MessageIcon(h, kind) }
	}

	class := func(kind desktop.ClassIconKind) func(desktop.Handle) (desktop.IconHandle, error) {
		return func(h desktop.Handle) (desktop.IconHandle, error) { return r.ClassIcon(h, kind) }
	}

	return []Source{
		{Name: "small2", Resolve: message(desktop.IconSmall2)},
		{Name: "small", Resolve: message(desktop.IconSmall)},
		{Name: "big", Resolve: message(desktop.IconBig)},
		{Name: "class-small", Resolve: class(desktop.ClassIconSmall)},
		{Name: "class", Resolve: class(desktop.ClassIcon)},
	}
}

// Extractor turns window handles into icon images
type Extractor struct {
	reader  interfaces.IconReader
	sources []Source
	log     logger.LoggerInterface
}

// Option configures an Extractor
type Option func(*Extractor)

// WithSources replaces the default lookup chain
func WithSources(sources ...Source) Option {
	return func(e *Extractor) { e.sources = sources }
}

// NewExtractor creates an extractor using the default lookup chain
func NewExtractor(r interfaces.IconReader, log logger.LoggerInterface, opts ...Option) *Extractor {
	e := &Extractor{
		reader:  r,
		sources: DefaultSources(r),
		log:     log,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Resolve walks the lookup chain and returns the first icon found. Errors
// from a source move on to the next one.
func (e *Extractor) Resolve(h desktop.Handle) (desktop.IconHandle, string, bool) {
	for _, src := range e.sources {
		icon, err := src.Resolve(h)
		if err != nil {
			e.log.Trace("Icon source failed",
				slog.String("hwnd", h.String()),
				slog.String("source", src.Name),
				slog.Any("error", err),
			)
			continue
		}

		if icon != 0 {
			return icon, src.Name, true
		}
	}

	return 0, "", false
}

// Extract renders the window's icon at size x size pixels. It returns false
// when the window has no icon or it could not be drawn; no error escapes.
func (e *Extractor) Extract(h desktop.Handle, size int) (*image.RGBA, bool) {
	img, err := e.extract(h, size)
	if err != nil {
		e.log.Trace("No icon", slog.String("hwnd", h.String()), slog.Any("error", err))
		return nil, false
	}

	return img, true
}

func (e *Extractor) extract(h desktop.Handle, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: icon size %d", desktop.ErrInvalidArgument, size)
	}

	icon, source, ok := e.Resolve(h)
	if !ok {
		return nil, fmt.Errorf("window %s has no icon", h)
	}

	bmp, err := e.reader.Rasterize(icon, RasterSize)
	if err != nil {
		return nil, fmt.Errorf("failed to draw %s icon: %w", source, err)
	}

	img, err := FromBGRX(bmp)
	if err != nil {
		return nil, err
	}

	return Resample(img, size), nil
}

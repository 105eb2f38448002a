package gridcanvas

import "errors"

var (
	// ErrRenderContextUnavailable is returned by New when no drawing
	// surface is supplied. The engine is unusable afterwards; there is no
	// silent no-op fallback.
	ErrRenderContextUnavailable = errors.New("gridcanvas: render context unavailable")

	// ErrEngineDisposed is returned by mutating operations after Dispose.
	ErrEngineDisposed = errors.New("gridcanvas: engine disposed")
)

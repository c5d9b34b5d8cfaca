package rack

// ProcessArgs describes the sample being processed.
type ProcessArgs struct {
	SampleRate float64
	SampleTime float64
	Frame      int64
}

// Module is processed once per sample by the host.
type Module interface {
	Process(args ProcessArgs)
}

// Neighborly is implemented by modules that want to know which modules are
// placed directly to their left and right. Either side may be nil.
type Neighborly interface {
	SetNeighbors(left, right any)
}

// Resetter is implemented by modules that support re-initialization.
type Resetter interface {
	Reset()
}

package rack

import (
	"errors"
	"log/slog"

	"github.com/cwbudde/algo-rack/dsp/core"
	"github.com/cwbudde/algo-rack/rack/chain"
)

var errNilModule = errors.New("rack: nil module")

// Order selects the processing order within one step.
type Order int

const (
	// LeftToRight processes modules in placement order.
	LeftToRight Order = iota
	// RightToLeft processes modules in reverse placement order.
	RightToLeft
)

// Option configures a Rack.
type Option func(*Rack)

// WithOrder sets the processing order.
func WithOrder(order Order) Option {
	return func(r *Rack) {
		r.order = order
	}
}

// WithLogger sets the logger used for host diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rack) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Rack hosts a row of modules.
type Rack struct {
	cfg    core.ProcessorConfig
	order  Order
	logger *slog.Logger

	modules []Module
	frame   int64
}

// New creates an empty rack.
func New(coreOpts []core.ProcessorOption, opts ...Option) *Rack {
	r := &Rack{
		cfg:    core.ApplyProcessorOptions(coreOpts...),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Config returns the processing configuration.
func (r *Rack) Config() core.ProcessorConfig {
	return r.cfg
}

// Add places m to the right of the last module and rewires neighbors.
func (r *Rack) Add(m Module) error {
	if m == nil {
		return errNilModule
	}

	r.modules = append(r.modules, m)
	r.rewire()

	return nil
}

// Insert places m at index, shifting later modules to the right.
func (r *Rack) Insert(index int, m Module) error {
	if m == nil {
		return errNilModule
	}

	index = int(core.Clamp(float64(index), 0, float64(len(r.modules))))

	r.modules = append(r.modules, nil)
	copy(r.modules[index+1:], r.modules[index:])
	r.modules[index] = m
	r.rewire()

	return nil
}

// Remove takes the module at index out of the row. Its former neighbors
// become adjacent.
func (r *Rack) Remove(index int) Module {
	if index < 0 || index >= len(r.modules) {
		return nil
	}

	m := r.modules[index]
	r.modules = append(r.modules[:index], r.modules[index+1:]...)

	if n, ok := m.(Neighborly); ok {
		n.SetNeighbors(nil, nil)
	}

	r.rewire()

	return m
}

// Len returns the number of modules.
func (r *Rack) Len() int { return len(r.modules) }

// Module returns the module at index, or nil.
func (r *Rack) Module(index int) Module {
	if index < 0 || index >= len(r.modules) {
		return nil
	}

	return r.modules[index]
}

// Frame returns the number of completed steps.
func (r *Rack) Frame() int64 { return r.frame }

// Step processes every module once and then publishes requested flips.
func (r *Rack) Step() {
	args := ProcessArgs{
		SampleRate: r.cfg.SampleRate,
		SampleTime: r.cfg.SampleTime(),
		Frame:      r.frame,
	}

	if r.order == RightToLeft {
		for i := len(r.modules) - 1; i >= 0; i-- {
			r.modules[i].Process(args)
		}
	} else {
		for _, m := range r.modules {
			m.Process(args)
		}
	}

	r.flip()
	r.frame++
}

// Run performs n steps.
func (r *Rack) Run(n int) {
	for i := 0; i < n; i++ {
		r.Step()
	}
}

// Block performs one host block of Config().BlockSize steps.
func (r *Rack) Block() {
	r.Run(r.cfg.BlockSize)
}

// Reset re-initializes every module that supports it.
func (r *Rack) Reset() {
	for _, m := range r.modules {
		if rs, ok := m.(Resetter); ok {
			rs.Reset()
		}
	}
}

func (r *Rack) flip() {
	for _, m := range r.modules {
		p := chain.Compatible(m)
		if p == nil {
			continue
		}

		if link := p.ChainLink(); link != nil {
			link.Flip()
		}
	}
}

func (r *Rack) rewire() {
	for i, m := range r.modules {
		n, ok := m.(Neighborly)
		if !ok {
			continue
		}

		var left, right any
		if i > 0 {
			left = r.modules[i-1]
		}

		if i < len(r.modules)-1 {
			right = r.modules[i+1]
		}

		n.SetNeighbors(left, right)
	}

	r.logger.Debug("rack rewired", "modules", len(r.modules))
}

package param

import (
	"fmt"
	"sync"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/host"
)

// Registry manages plugin parameters in the order the host sees them.
type Registry struct {
	params map[uint32]*Parameter
	order  []*Parameter
	mu     sync.RWMutex
}

// NewRegistry creates a new parameter registry
func NewRegistry() *Registry {
	return &Registry{
		params: make(map[uint32]*Parameter),
	}
}

// Add registers parameters and assigns their Index.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if existing, ok := r.params[p.ID]; ok {
			return fmt.Errorf("parameter ID %d already used by %q", p.ID, existing.Name)
		}
		p.Index = len(r.order)
		r.params[p.ID] = p
		r.order = append(r.order, p)
	}
	return nil
}

// Get retrieves a parameter by ID
func (r *Registry) Get(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.params[id]
}

// GetByIndex retrieves a parameter by index
func (r *Registry) GetByIndex(index int) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.order) {
		return nil
	}
	return r.order[index]
}

// Count returns the number of parameters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// All returns all parameters in order
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, len(r.order))
	copy(result, r.order)
	return result
}

// ResetAll restores every default value.
func (r *Registry) ResetAll() {
	for _, p := range r.All() {
		p.Reset()
	}
}

// ProcessParam implements TFruityPlug.ProcessParam for the registered
// parameters.
//
// With REC_UpdateValue the value is stored, scaled from 0..65536 first when
// REC_FromMIDI is set. With REC_GetValue the current value is returned in
// the host's encoding. Unknown indexes answer 0.
func (r *Registry) ProcessParam(index, value int, flags fl.ProcessParamFlags) fl.Value {
	p := r.GetByIndex(index)
	if p == nil {
		return fl.Zero
	}

	if flags.Has(fl.ParamUpdateValue) && p.Flags&IsReadOnly == 0 {
		if flags.Has(fl.ParamFromMIDI) {
			p.SetValue(float64(value) / fl.MIDIParamRange)
		} else {
			p.SetValue(p.Decode(value))
		}
	}

	if flags.Has(fl.ParamGetValue) {
		return fl.Int(p.Wire())
	}
	return fl.Int(value)
}

// ParamInfo answers FPD_GetParamInfo.
func (r *Registry) ParamInfo(index int) fl.ParameterFlags {
	if p := r.GetByIndex(index); p != nil {
		return p.Info()
	}
	return 0
}

// Name answers the GetName sections about parameters. ok is false for other
// sections and unknown indexes.
func (r *Registry) Name(req host.GetName) (name string, ok bool) {
	switch n := req.(type) {
	case host.ParamName:
		if p := r.GetByIndex(n.Index); p != nil {
			return p.Name, true
		}
	case host.ParamValueName:
		if p := r.GetByIndex(n.Index); p != nil {
			return p.FormatValue(p.Decode(n.Value)), true
		}
	}
	return "", false
}

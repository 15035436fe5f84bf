// Package state saves and restores plugin state through the host's project
// stream.
package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4"

	"github.com/justyntemme/flsdk/pkg/framework/param"
)

var magic = [4]byte{'F', 'L', 'G', 'O'}

const flagCompressed uint32 = 1

// MaxCustomSize bounds the custom blob of a state.
const MaxCustomSize = 64 << 20

var (
	// ErrInvalidFormat is returned when the data was not written by a
	// Manager.
	ErrInvalidFormat = errors.New("invalid state format")
	// ErrNewerVersion is returned for state saved by a newer plugin.
	ErrNewerVersion = errors.New("state version is newer than supported")
)

// Manager handles plugin state saving and loading.
//
// The layout is the magic "FLGO", the version and a flags word, followed by
// the body: the parameter count, (ID, normalized value) pairs and a
// length-prefixed custom blob. The body is an LZ4 frame when compression is
// enabled. All integers are little-endian.
type Manager struct {
	version    uint32
	compress   bool
	registry   *param.Registry
	customSave CustomSaveFunc
	customLoad CustomLoadFunc
}

// CustomSaveFunc lets plugins save additional state beyond parameters.
type CustomSaveFunc func(w io.Writer) error

// CustomLoadFunc reads back what the CustomSaveFunc wrote, along with the
// version it was saved with.
type CustomLoadFunc func(r io.Reader, version uint32) error

// Option configures a Manager.
type Option func(*Manager)

// WithVersion sets the version written with new state. Older state still
// loads; newer state is rejected.
func WithVersion(v uint32) Option {
	return func(m *Manager) { m.version = v }
}

// WithCompression compresses the body with LZ4.
func WithCompression() Option {
	return func(m *Manager) { m.compress = true }
}

// NewManager creates a new state manager
func NewManager(registry *param.Registry, opts ...Option) *Manager {
	m := &Manager{
		version:  1,
		registry: registry,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Version returns the version written by Save.
func (m *Manager) Version() uint32 { return m.version }

// SetCustomState sets the functions saving and loading custom state.
func (m *Manager) SetCustomState(save CustomSaveFunc, load CustomLoadFunc) {
	m.customSave = save
	m.customLoad = load
}

// Save writes the plugin state to w.
func (m *Manager) Save(w io.Writer) error {
	var flags uint32
	if m.compress {
		flags |= flagCompressed
	}
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, [2]uint32{m.version, flags}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if !m.compress {
		return m.saveBody(w)
	}
	zw := lz4.NewWriter(w)
	if err := m.saveBody(zw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush compressed state: %w", err)
	}
	return nil
}

func (m *Manager) saveBody(w io.Writer) error {
	params := m.registry.All()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(params))); err != nil {
		return fmt.Errorf("write parameters: %w", err)
	}
	for _, p := range params {
		if err := binary.Write(w, binary.LittleEndian, p.ID); err != nil {
			return fmt.Errorf("write parameter %d: %w", p.ID, err)
		}
		if err := binary.Write(w, binary.LittleEndian, p.GetValue()); err != nil {
			return fmt.Errorf("write parameter %d: %w", p.ID, err)
		}
	}

	var custom bytes.Buffer
	if m.customSave != nil {
		if err := m.customSave(&custom); err != nil {
			return fmt.Errorf("save custom state: %w", err)
		}
	}
	if custom.Len() > MaxCustomSize {
		return fmt.Errorf("save custom state: %d bytes exceeds %d", custom.Len(), MaxCustomSize)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(custom.Len())); err != nil {
		return fmt.Errorf("write custom state: %w", err)
	}
	if _, err := w.Write(custom.Bytes()); err != nil {
		return fmt.Errorf("write custom state: %w", err)
	}
	return nil
}

// Load reads the plugin state from r. Parameters the registry doesn't know
// are skipped.
func (m *Manager) Load(r io.Reader) error {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if header != magic {
		return ErrInvalidFormat
	}

	var vf [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &vf); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	version, flags := vf[0], vf[1]
	if version > m.version {
		return fmt.Errorf("%w: %d > %d", ErrNewerVersion, version, m.version)
	}

	if flags&flagCompressed != 0 {
		r = lz4.NewReader(r)
	}
	return m.loadBody(r, version)
}

func (m *Manager) loadBody(r io.Reader, version uint32) error {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("read parameters: %w", err)
	}
	for i := uint32(0); i < count; i++ {
		var id uint32
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return fmt.Errorf("read parameter: %w", err)
		}
		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return fmt.Errorf("read parameter %d: %w", id, err)
		}
		if p := m.registry.Get(id); p != nil {
			p.SetValue(value)
		}
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return fmt.Errorf("read custom state: %w", err)
	}
	if size == 0 {
		return nil
	}
	if size > MaxCustomSize {
		return fmt.Errorf("%w: custom state of %d bytes", ErrInvalidFormat, size)
	}
	// The buffer grows with the bytes actually read, not the declared size.
	var custom bytes.Buffer
	if _, err := io.CopyN(&custom, r, int64(size)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("read custom state: %w", err)
	}
	if m.customLoad == nil {
		return nil
	}
	if err := m.customLoad(&custom, version); err != nil {
		return fmt.Errorf("load custom state: %w", err)
	}
	return nil
}

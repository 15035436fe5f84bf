package plugin

import (
	"fmt"
	rtdebug "runtime/debug"
	"sync"

	"github.com/justyntemme/flsdk/pkg/fl"
	"github.com/justyntemme/flsdk/pkg/framework/debug"
	"github.com/justyntemme/flsdk/pkg/host"
)

var (
	// Global map of adapters indexed by the handle given to C
	instances   = make(map[uintptr]*Adapter)
	instancesMu sync.RWMutex
	nextID      uintptr = 1
)

var (
	globalFactory Factory
	globalConfig  = Config{RecoverPanics: true}
	globalMu      sync.RWMutex
)

// Config for plugin behavior
type Config struct {
	// LogFile sends the default logger to a file. FL Studio loads plugins
	// without a console, so this is where log output ends up.
	LogFile string

	// LogLevel is "debug", "info", "warn", "error" or "off". Empty means
	// "info".
	LogLevel string

	// RecoverPanics recovers panics at the C boundary. A panic that reaches
	// the host takes the whole process down.
	RecoverPanics bool

	// Profile times every render call. The report is logged when the
	// instance is destroyed.
	Profile bool

	// CheckOutput logs NaNs, clipping and DC offset in rendered audio.
	CheckOutput bool
}

// Register sets the factory used for every new instance. Call it from init.
func Register(f Factory) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalFactory = f
}

// SetConfig sets the global plugin configuration and applies the logging
// settings.
func SetConfig(cfg Config) {
	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()

	if cfg.LogFile != "" {
		l, err := debug.NewFileLogger(cfg.LogFile, "", debug.DefaultFlags)
		if err != nil {
			debug.Default().WithError(err).Error("keeping the current log output")
		} else {
			prev := debug.Default()
			debug.SetDefault(l)
			_ = prev.Close()
		}
	}

	level := debug.LogLevelInfo
	if cfg.LogLevel != "" {
		parsed, err := debug.ParseLevel(cfg.LogLevel)
		if err != nil {
			debug.Default().WithError(err).Warn("invalid log level %q", cfg.LogLevel)
		} else {
			level = parsed
		}
	}
	debug.SetLevel(level)
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// NewInstance creates a plugin with the registered factory and returns the
// handle the C bridge keeps. Handles are never 0.
func NewInstance(h *host.Host, tag fl.Tag) (uintptr, error) {
	globalMu.RLock()
	factory := globalFactory
	globalMu.RUnlock()

	if factory == nil {
		return 0, fl.ErrNotRegistered
	}
	p := factory(h, tag)
	if p == nil {
		return 0, fmt.Errorf("factory returned no plugin for tag %d", tag)
	}

	adapter := NewAdapter(p, h, tag)

	instancesMu.Lock()
	id := nextID
	nextID++
	instances[id] = adapter
	instancesMu.Unlock()

	debug.WithFields(debug.Fields{"tag": int(tag), "handle": id}).
		Info("created %s (host %s)", adapter.info.LongName, h.VersionString())
	return id, nil
}

// Instance returns the adapter behind id, or nil.
func Instance(id uintptr) *Adapter {
	if id == 0 {
		return nil
	}
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	return instances[id]
}

// ReleaseInstance unregisters id and destroys its adapter.
func ReleaseInstance(id uintptr) {
	instancesMu.Lock()
	adapter, ok := instances[id]
	delete(instances, id)
	instancesMu.Unlock()

	if ok {
		adapter.Destroy()
	}
}

// InstanceCount returns the number of live instances.
func InstanceCount() int {
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	return len(instances)
}

// Recover must be deferred by every function the host calls. It logs a panic
// and, when Config.RecoverPanics is set, stops it there.
func Recover(operation string) {
	if r := recover(); r != nil {
		debug.WithFields(debug.Fields{"function": operation, "panic": r}).
			Error("panic in callback\n%s", rtdebug.Stack())
		if !CurrentConfig().RecoverPanics {
			panic(r)
		}
	}
}

package plugin

import (
	"fmt"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Info describes a plugin to the host. It is the same for every instance of a
// plugin module and is copied into TFruityPlugInfo at instantiation.
type Info struct {
	SDKVersion int
	// LongName is the name of the plugin DLL without the extension.
	LongName string
	// ShortName is used in labels.
	ShortName string
	Flags     fl.PluginFlags
	// NumParams is the maximum number of parameters. It can be overridden
	// with message.SetNumParams.
	NumParams int
	// DefPoly is the preferred maximum polyphony, 0 meaning infinite.
	DefPoly      int
	NumOutCtrls  int
	NumOutVoices int
}

func (i Info) String() string {
	return fmt.Sprintf("Info{name: %q, short: %q, flags: %s, params: %d}",
		i.LongName, i.ShortName, i.Flags, i.NumParams)
}

// InfoBuilder builds an Info. Start from one of the New* constructors.
type InfoBuilder struct {
	info Info
}

// NewEffect starts the Info of an effect, the most basic plugin type.
func NewEffect(longName, shortName string, numParams int) *InfoBuilder {
	b := &InfoBuilder{info: Info{
		SDKVersion: fl.CurrentSDKVersion,
		LongName:   longName,
		ShortName:  shortName,
		NumParams:  numParams,
	}}
	return b.set(fl.FlagNewVoiceParams)
}

// NewFullGen starts the Info of a full standalone generator rendering
// through Gen_Render.
func NewFullGen(longName, shortName string, numParams int) *InfoBuilder {
	return NewEffect(longName, shortName, numParams).Generator().GetNoteInput()
}

// NewHybridGen starts the Info of a hybrid generator that streams voices
// into the host sampler.
func NewHybridGen(longName, shortName string, numParams int) *InfoBuilder {
	return NewFullGen(longName, shortName, numParams).set(fl.FlagUseSampler)
}

// NewVisual starts the Info of a purely visual plugin that doesn't process
// audio.
func NewVisual(longName, shortName string, numParams int) *InfoBuilder {
	return NewEffect(longName, shortName, numParams).NoProcess()
}

func (b *InfoBuilder) set(f fl.PluginFlags) *InfoBuilder {
	b.info.Flags |= f
	return b
}

// WithPoly sets the preferred maximum polyphony.
func (b *InfoBuilder) WithPoly(poly int) *InfoBuilder {
	b.info.DefPoly = poly
	return b
}

// WithOutCtrls sets the number of internal output controllers.
func (b *InfoBuilder) WithOutCtrls(n int) *InfoBuilder {
	b.info.NumOutCtrls = n
	return b
}

// WithOutVoices sets the number of internal output voices.
func (b *InfoBuilder) WithOutVoices(n int) *InfoBuilder {
	b.info.NumOutVoices = n
	return b
}

// Generator marks the plugin as a generator rather than an effect.
func (b *InfoBuilder) Generator() *InfoBuilder { return b.set(fl.FlagGenerator) }

// GetChanCustomShape uses the extra shape sample loaded in the parent channel.
func (b *InfoBuilder) GetChanCustomShape() *InfoBuilder { return b.set(fl.FlagGetChanCustomShape) }

// GetNoteInput makes the plugin receive note events.
func (b *InfoBuilder) GetNoteInput() *InfoBuilder { return b.set(fl.FlagGetNoteInput) }

// WantNewTick calls Ticker.Tick before each mixed tick, so the plugin can
// act as an internal controller.
func (b *InfoBuilder) WantNewTick() *InfoBuilder { return b.set(fl.FlagWantNewTick) }

// NoProcess tells the host the plugin doesn't process buffers at all.
func (b *InfoBuilder) NoProcess() *InfoBuilder { return b.set(fl.FlagNoProcess) }

// NoWindow shows the editor inside the channel settings window.
func (b *InfoBuilder) NoWindow() *InfoBuilder { return b.set(fl.FlagNoWindow) }

// Interfaceless relies on the host to build the interface. Not used yet by
// the host.
func (b *InfoBuilder) Interfaceless() *InfoBuilder { return b.set(fl.FlagInterfaceless) }

// TimeWarp declares support for changing the play position of a voice. Not
// used yet by the host.
func (b *InfoBuilder) TimeWarp() *InfoBuilder { return b.set(fl.FlagTimeWarp) }

// MidiOut declares that the plugin sends MIDI. Only such plugins are enabled
// when rendering to a MIDI file.
func (b *InfoBuilder) MidiOut() *InfoBuilder { return b.set(fl.FlagMIDIOut) }

// DemoVersion stops the host from saving the plugin's automation.
func (b *InfoBuilder) DemoVersion() *InfoBuilder { return b.set(fl.FlagDemoVersion) }

// CanSend gives access to the send tracks. The plugin then can't be dropped
// into a send track or the master.
func (b *InfoBuilder) CanSend() *InfoBuilder { return b.set(fl.FlagCanSend) }

// LoopOut lets the plugin send delayed messages to itself (Host.LoopOut).
func (b *InfoBuilder) LoopOut() *InfoBuilder { return b.set(fl.FlagMsgOut) }

// HybridCanRelease lets a hybrid generator release its envelope itself.
func (b *InfoBuilder) HybridCanRelease() *InfoBuilder { return b.set(fl.FlagHybridCanRelease) }

// GetChanSample uses the sample loaded in the parent channel (see
// host.ChanSampleChanged).
func (b *InfoBuilder) GetChanSample() *InfoBuilder { return b.set(fl.FlagGetChanSample) }

// WantFitTime shows the fit to time selector (see host.SetFitTime).
func (b *InfoBuilder) WantFitTime() *InfoBuilder { return b.set(fl.FlagWantFitTime) }

func (b *InfoBuilder) CantSmartDisable() *InfoBuilder { return b.set(fl.FlagCantSmartDisable) }

// WantSettingsButton adds a settings button to the title bar (see
// host.ShowSettings).
func (b *InfoBuilder) WantSettingsButton() *InfoBuilder { return b.set(fl.FlagWantSettingsBtn) }

// Build returns the Info.
func (b *InfoBuilder) Build() Info { return b.info }

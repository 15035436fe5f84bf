package message

import (
	"unsafe"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// TicksToTime translates a tick time into Bar:Step:Tick.
type TicksToTime struct {
	Ticks uint32
}

func (r TicksToTime) Encode(a *Arena) fl.Message {
	st := fl.Alloc[fl.SongTime](a)
	return msg(idTicksToTime, fl.Addr(unsafe.Pointer(st)), int(r.Ticks))
}

func (TicksToTime) Decode(sent fl.Message, _ int) fl.SongTime {
	return *(*fl.SongTime)(fl.Pointer(sent.Index))
}

// GetMixingTime returns the mixer time. Offset is in samples.
type GetMixingTime struct {
	Format fl.TimeFormat
	Offset uint64
}

func (r GetMixingTime) Encode(a *Arena) fl.Message {
	return timeMessage(a, idGetMixingTime, r.Format, r.Offset)
}

func (GetMixingTime) Decode(sent fl.Message, _ int) fl.Time { return timeAt(sent) }

// GetPlaybackTime returns the playback time. Offset is in samples.
type GetPlaybackTime struct {
	Format fl.TimeFormat
	Offset uint64
}

func (r GetPlaybackTime) Encode(a *Arena) fl.Message {
	return timeMessage(a, idGetPlaybackTime, r.Format, r.Offset)
}

func (GetPlaybackTime) Decode(sent fl.Message, _ int) fl.Time { return timeAt(sent) }

// Selection is the answer of GetSelTime. Without a selection the time spans
// the whole song and Selected is false.
type Selection struct {
	fl.Time
	Selected bool
}

// GetSelTime returns the selection time.
type GetSelTime struct {
	Format fl.TimeFormat
}

func (r GetSelTime) Encode(a *Arena) fl.Message {
	return timeMessage(a, idGetSelTime, r.Format, 0)
}

func (GetSelTime) Decode(sent fl.Message, result int) Selection {
	return Selection{Time: timeAt(sent), Selected: result != 0}
}

// GetTimeMul returns the current tempo multiplier used for fast-forward.
type GetTimeMul struct{}

func (GetTimeMul) Encode(*Arena) fl.Message { return msg(idGetTimeMul, 0, 0) }

func (GetTimeMul) Decode(_ fl.Message, result int) float32 { return fl.FloatFromBits(result) }

func timeMessage(a *Arena, id int, format fl.TimeFormat, offset uint64) fl.Message {
	t := fl.Alloc[fl.Time](a)
	t.T = float64(offset)
	t.T2 = float64(offset)
	return msg(id, int(format), fl.Addr(unsafe.Pointer(t)))
}

func timeAt(sent fl.Message) fl.Time {
	return *(*fl.Time)(fl.Pointer(sent.Value))
}

func unsafeBytes(p unsafe.Pointer, offset, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Add(p, offset)), n)
}

package fl

import "fmt"

// TransportControl identifies the control of an FPD_Transport message.
type TransportControl int

const (
	TransportJog           TransportControl = 0
	TransportJog2          TransportControl = 1
	TransportStrip         TransportControl = 2
	TransportStripJog      TransportControl = 3
	TransportStripHold     TransportControl = 4
	TransportPrevious      TransportControl = 5
	TransportNext          TransportControl = 6
	TransportPreviousNext  TransportControl = 7
	TransportMoveJog       TransportControl = 8
	TransportPlay          TransportControl = 10
	TransportStop          TransportControl = 11
	TransportRecord        TransportControl = 12
	TransportRewind        TransportControl = 13
	TransportFastForward   TransportControl = 14
	TransportLoop          TransportControl = 15
	TransportMute          TransportControl = 16
	TransportMode          TransportControl = 17
	TransportUndo          TransportControl = 20
	TransportUndoUp        TransportControl = 21
	TransportUndoJog       TransportControl = 22
	TransportPunch         TransportControl = 30
	TransportPunchIn       TransportControl = 31
	TransportPunchOut      TransportControl = 32
	TransportAddMarker     TransportControl = 33
	TransportAddAltMarker  TransportControl = 34
	TransportMarkerJumpJog TransportControl = 35
	TransportMarkerSelJog  TransportControl = 36
	TransportUp            TransportControl = 40
	TransportDown          TransportControl = 41
	TransportLeft          TransportControl = 42
	TransportRight         TransportControl = 43
	TransportHZoomJog      TransportControl = 44
	TransportVZoomJog      TransportControl = 45
	TransportSnap          TransportControl = 48
	TransportSnapMode      TransportControl = 49
	TransportCut           TransportControl = 50
	TransportCopy          TransportControl = 51
	TransportPaste         TransportControl = 52
	TransportInsert        TransportControl = 53
	TransportDelete        TransportControl = 54
	TransportNextWindow    TransportControl = 58
	TransportWindowJog     TransportControl = 59
	TransportF1            TransportControl = 60
	TransportF10           TransportControl = 69
	TransportEnter         TransportControl = 80
	TransportEscape        TransportControl = 81
	TransportYes           TransportControl = 82
	TransportNo            TransportControl = 83
	TransportMenu          TransportControl = 90
	TransportItemMenu      TransportControl = 91
	TransportSave          TransportControl = 92
	TransportSaveNew       TransportControl = 93

	TransportUnknown TransportControl = -1
)

// TransportKind tells which field of a Transport carries the value.
type TransportKind int

const (
	KindUnknown TransportKind = iota
	KindJog
	KindButton
	KindHold
)

var transportKinds = map[TransportControl]TransportKind{
	TransportJog:           KindJog,
	TransportJog2:          KindJog,
	TransportStrip:         KindJog,
	TransportStripJog:      KindJog,
	TransportStripHold:     KindJog,
	TransportPreviousNext:  KindJog,
	TransportMoveJog:       KindJog,
	TransportUndoJog:       KindJog,
	TransportMarkerJumpJog: KindJog,
	TransportMarkerSelJog:  KindJog,
	TransportHZoomJog:      KindJog,
	TransportVZoomJog:      KindJog,
	TransportSnapMode:      KindJog,
	TransportWindowJog:     KindJog,

	TransportRewind:      KindHold,
	TransportFastForward: KindHold,
	TransportPunch:       KindHold,

	TransportPrevious:     KindButton,
	TransportNext:         KindButton,
	TransportPlay:         KindButton,
	TransportStop:         KindButton,
	TransportRecord:       KindButton,
	TransportLoop:         KindButton,
	TransportMute:         KindButton,
	TransportMode:         KindButton,
	TransportUndo:         KindButton,
	TransportUndoUp:       KindButton,
	TransportPunchIn:      KindButton,
	TransportPunchOut:     KindButton,
	TransportAddMarker:    KindButton,
	TransportAddAltMarker: KindButton,
	TransportUp:           KindButton,
	TransportDown:         KindButton,
	TransportLeft:         KindButton,
	TransportRight:        KindButton,
	TransportSnap:         KindButton,
	TransportCut:          KindButton,
	TransportCopy:         KindButton,
	TransportPaste:        KindButton,
	TransportInsert:       KindButton,
	TransportDelete:       KindButton,
	TransportNextWindow:   KindButton,
	TransportEnter:        KindButton,
	TransportEscape:       KindButton,
	TransportYes:          KindButton,
	TransportNo:           KindButton,
	TransportMenu:         KindButton,
	TransportItemMenu:     KindButton,
	TransportSave:         KindButton,
	TransportSaveNew:      KindButton,
}

func init() {
	for c := TransportF1; c <= TransportF10; c++ {
		transportKinds[c] = KindButton
	}
}

// Transport is a decoded FPD_Transport message.
//
// Button is 0 for release, 1 for switch (if release is not supported) and 2
// for hold (if release should be expected). Hold is false on release. Jog is
// an integer increment.
//
// If a Jog-style control does not answer, the host tries Previous/Next; if
// UndoUp does not answer, UndoJog is tried.
type Transport struct {
	Control TransportControl
	Kind    TransportKind
	Jog     int64
	Button  uint8
	Hold    bool
}

// DecodeTransport decodes the index/value pair of an FPD_Transport message.
func DecodeTransport(index, value int) Transport {
	c := TransportControl(index)
	kind, ok := transportKinds[c]
	if !ok {
		return Transport{Control: TransportUnknown, Kind: KindUnknown}
	}
	t := Transport{Control: c, Kind: kind}
	switch kind {
	case KindJog:
		t.Jog = int64(value)
	case KindButton:
		t.Button = uint8(value)
	case KindHold:
		t.Hold = value != 0
	}
	return t
}

// FunctionKey returns n for F1..F10, or 0.
func (t Transport) FunctionKey() int {
	if t.Control >= TransportF1 && t.Control <= TransportF10 {
		return int(t.Control-TransportF1) + 1
	}
	return 0
}

func (t Transport) String() string {
	switch t.Kind {
	case KindJog:
		return fmt.Sprintf("Transport{control: %d, jog: %d}", t.Control, t.Jog)
	case KindButton:
		return fmt.Sprintf("Transport{control: %d, button: %d}", t.Control, t.Button)
	case KindHold:
		return fmt.Sprintf("Transport{control: %d, hold: %t}", t.Control, t.Hold)
	default:
		return "Transport{unknown}"
	}
}

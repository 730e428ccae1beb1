package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// TimestampUnit is the unit event/tempo/lyric timestamps are expressed in.
type TimestampUnit byte

const (
	TimestampMPEGFrames TimestampUnit = 1
	TimestampMilliseconds TimestampUnit = 2
)

func (u TimestampUnit) valid() bool {
	return u == TimestampMPEGFrames || u == TimestampMilliseconds
}

// TimedEvent is one (eventCode, time) pair in an event-timing-codes frame.
type TimedEvent struct {
	EventCode byte
	Time      int32
}

// EventTimingCodes is "ETC"/"ETCO".
type EventTimingCodes struct {
	Unit   TimestampUnit
	Events []TimedEvent
}

func (f EventTimingCodes) Identifier() string { return "ETCO" }

func (f EventTimingCodes) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	out := []byte{byte(f.Unit)}
	for _, e := range f.Events {
		out = append(out, e.EventCode)
		out = wire.AppendInt32BE(out, e.Time)
	}
	return out, nil
}

func (f EventTimingCodes) SupportsVersion(v Version) error {
	if !f.Unit.valid() {
		return fmt.Errorf("event timing codes: invalid timestamp unit %d", f.Unit)
	}
	return nil
}

func decodeETCO(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	unit := TimestampUnit(body[0])
	if !unit.valid() {
		return nil, fmt.Errorf("frame %s: invalid timestamp unit %d", id, body[0])
	}
	cur := wire.NewCursor(body[1:])
	var events []TimedEvent
	for cur.Len() > 0 {
		code, err := cur.Byte()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		t, err := cur.Int32BE()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		events = append(events, TimedEvent{EventCode: code, Time: t})
	}
	return EventTimingCodes{Unit: unit, Events: events}, nil
}

func init() {
	RegisterKind("ETCO", decodeETCO)
	RegisterKind("ETC", decodeETCO)
}

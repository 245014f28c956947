/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sz

import (
	"fmt"
	"time"
)

// Event types emitted by the compression/decompression driver, covering
// the stages this single-threaded, block/predictor/quantizer/encoder
// pipeline actually goes through (no per-job fan-out, no transform stage).
const (
	EvtCompressionStart   = 0
	EvtDecompressionStart = 1
	EvtBlockStart         = 2
	EvtBlockEnd           = 3
	EvtBeforeEntropy      = 4
	EvtAfterEntropy       = 5
	EvtCompressionEnd     = 6
	EvtDecompressionEnd   = 7
)

// Event is a compression/decompression lifecycle notification.
type Event struct {
	eventType int
	blockID   int
	size      int64
	digest    uint64
	eventTime time.Time
	msg       string
}

// NewEvent creates an Event carrying a block id, a size and a digest.
func NewEvent(eventType, blockID int, size int64, digest uint64) *Event {
	return &Event{eventType: eventType, blockID: blockID, size: size, digest: digest, eventTime: time.Now()}
}

// NewEventFromString creates an Event that merely wraps a human-readable message.
func NewEventFromString(eventType int, msg string) *Event {
	return &Event{eventType: eventType, msg: msg, eventTime: time.Now()}
}

// Type returns the EvtXxx type of this event.
func (e *Event) Type() int { return e.eventType }

// BlockID returns the block id this event pertains to, or -1 for
// whole-array events.
func (e *Event) BlockID() int { return e.blockID }

// Size returns the size associated with this event, if any. The
// blockcodec driver passes an element count for start, before-entropy
// and decompression-end events, and a byte count for after-entropy and
// compression-end events.
func (e *Event) Size() int64 { return e.size }

// Digest returns the checksum associated with this event, if any.
func (e *Event) Digest() uint64 { return e.digest }

// Time returns when this event was created.
func (e *Event) Time() time.Time { return e.eventTime }

// String renders a human-readable line for this event.
func (e *Event) String() string {
	if len(e.msg) > 0 {
		return e.msg
	}

	var t string
	switch e.eventType {
	case EvtCompressionStart:
		t = "COMPRESSION_START"
	case EvtDecompressionStart:
		t = "DECOMPRESSION_START"
	case EvtBlockStart:
		t = "BLOCK_START"
	case EvtBlockEnd:
		t = "BLOCK_END"
	case EvtBeforeEntropy:
		t = "BEFORE_ENTROPY"
	case EvtAfterEntropy:
		t = "AFTER_ENTROPY"
	case EvtCompressionEnd:
		t = "COMPRESSION_END"
	case EvtDecompressionEnd:
		t = "DECOMPRESSION_END"
	}

	return fmt.Sprintf("{\"type\":%q,\"block\":%d,\"size\":%d,\"time\":%d}",
		t, e.blockID, e.size, e.eventTime.UnixNano()/1000000)
}

// Listener is implemented by event processors registered on a driver.
type Listener interface {
	// ProcessEvent is called whenever the driver emits an Event.
	ProcessEvent(evt *Event)
}

// notifyListeners fans evt out to every listener, swallowing nothing:
// a panicking listener is a caller bug and should surface immediately.
func notifyListeners(listeners []Listener, evt *Event) {
	for _, l := range listeners {
		l.ProcessEvent(evt)
	}
}

// NotifyListeners is the exported form used by the blockcodec driver.
func NotifyListeners(listeners []Listener, evt *Event) {
	notifyListeners(listeners, evt)
}

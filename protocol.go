package ledbadge

import (
	"encoding/binary"
	"fmt"
	"time"
)

const (
	// MaxMessages is the number of message slots in the device protocol.
	MaxMessages = 8
	// HeaderSize is the fixed byte length of the protocol header.
	HeaderSize = 64
	// maxPayload keeps header plus payload within the device's 8 KiB
	// memory. Exceeding it can damage the display.
	maxPayload = 8192 - HeaderSize
)

// protocolMagic identifies the badge protocol family ("wang").
var protocolMagic = [5]byte{0x77, 0x61, 0x6e, 0x67, 0x00}

// Display modes accepted in Message.Mode.
const (
	ModeScrollLeft uint8 = iota
	ModeScrollRight
	ModeScrollUp
	ModeScrollDown
	ModeStill
	ModeAnimation
	ModeDropDown
	ModeCurtain
	ModeLaser
)

// Message pairs one composed bitmap strip with its display parameters.
type Message struct {
	Bitmap Bitmap
	Mode   uint8 // 0..8, see the Mode constants
	Speed  uint8 // scroll speed 1..8
	Blink  uint8 // 1: blinking, 0: normal
	Ants   uint8 // 1: animated border, 0: normal
}

// brightnessCodes maps percent brightness to the device encoding.
var brightnessCodes = map[int]byte{100: 0x00, 75: 0x10, 50: 0x20, 25: 0x40}

// BuildBuffer assembles the complete device buffer: the 64-byte header
// followed by every message's bitmap bytes in message order. The header
// records brightness, per-slot mode/speed/blink/ants, per-slot payload
// byte lengths and a timestamp taken from now; unused slots stay zero.
// Out-of-range parameters are rejected, never clamped. Identical inputs
// yield a byte-identical buffer.
func BuildBuffer(msgs []Message, brightness int, now time.Time) ([]byte, error) {
	if len(msgs) == 0 {
		return nil, ErrNoMessages
	}
	if len(msgs) > MaxMessages {
		return nil, ErrTooManyMessages
	}
	bright, ok := brightnessCodes[brightness]
	if !ok {
		return nil, &InvalidParameterError{Field: "brightness", Value: brightness}
	}
	total := 0
	for i, m := range msgs {
		if err := validateMessage(i, m); err != nil {
			return nil, err
		}
		total += m.Bitmap.ByteLen()
	}
	if total > maxPayload {
		return nil, ErrPayloadTooLarge
	}

	buf := make([]byte, HeaderSize, HeaderSize+total)
	copy(buf, protocolMagic[:])
	buf[5] = bright
	for i, m := range msgs {
		buf[6] |= m.Blink << uint(i)
		buf[7] |= m.Ants << uint(i)
		buf[8+i] = (m.Speed-1)<<4 | m.Mode
		binary.BigEndian.PutUint16(buf[16+2*i:], uint16(m.Bitmap.ByteLen()))
	}
	buf[38] = byte(now.Year() % 100)
	buf[39] = byte(now.Month())
	buf[40] = byte(now.Day())
	buf[41] = byte(now.Hour())
	buf[42] = byte(now.Minute())
	buf[43] = byte(now.Second())

	for _, m := range msgs {
		buf = append(buf, m.Bitmap.data...)
	}
	return buf, nil
}

func validateMessage(i int, m Message) error {
	field := func(name string) string {
		return fmt.Sprintf("message[%d].%s", i, name)
	}
	if m.Mode > ModeLaser {
		return &InvalidParameterError{Field: field("mode"), Value: int(m.Mode)}
	}
	if m.Speed < 1 || m.Speed > 8 {
		return &InvalidParameterError{Field: field("speed"), Value: int(m.Speed)}
	}
	if m.Blink > 1 {
		return &InvalidParameterError{Field: field("blink"), Value: int(m.Blink)}
	}
	if m.Ants > 1 {
		return &InvalidParameterError{Field: field("ants"), Value: int(m.Ants)}
	}
	return nil
}

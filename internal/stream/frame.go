// internal/stream/frame.go
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Wire layout of a streaming datagram, little-endian:
//
//	magic:u16  format:u8  batches:u8  sequence:u32  payload...
const (
	Magic      uint16 = 0x057B
	HeaderSize        = 8
)

// Payload format identifiers.
const FormatAdcDac uint8 = 1

// Scaling between machine units and volts on the analog front end.
// Display paths scale every channel by DACVoltsPerLSB (output-referred
// volts); ADCVoltsPerLSB is the input-referred scale for consumers that
// need volts at the ADC terminals instead.
const (
	DACLSBPerVolt  = float64(1<<16) / (4.096 * 5)
	DACVoltsPerLSB = 1 / DACLSBPerVolt
	ADCVoltsPerLSB = (5.0 / 2.0 * 4.096) / float64(1<<15)
)

var (
	ErrShortFrame = errors.New("stream: short frame")
	ErrBadMagic   = errors.New("stream: bad frame magic")
)

// Header identifies one streaming frame.
type Header struct {
	FormatID uint8
	Batches  uint8
	Sequence uint32
}

// Frame is one parsed streaming datagram. Body aliases the input slice.
type Frame struct {
	Header Header
	Body   []byte
}

// Parse validates the header and splits one datagram into header and
// payload.
func Parse(data []byte) (Frame, error) {
	if len(data) < HeaderSize {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(data))
	}
	if m := binary.LittleEndian.Uint16(data[0:2]); m != Magic {
		return Frame{}, fmt.Errorf("%w: %#04x", ErrBadMagic, m)
	}
	return Frame{
		Header: Header{
			FormatID: data[2],
			Batches:  data[3],
			Sequence: binary.LittleEndian.Uint32(data[4:8]),
		},
		Body: data[HeaderSize:],
	}, nil
}

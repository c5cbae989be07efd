// internal/stream/adcdac.go
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const adcDacChannels = 4

// AdcDac is the default streaming payload: per batch, four channels
// (ADC0, ADC1, DAC0, DAC1) of 16-bit samples. DAC samples arrive in
// offset binary and are converted to two's complement on decode.
type AdcDac struct {
	Batches int
	// Samples is channel-major with batches concatenated.
	Samples [adcDacChannels][]int16
}

// ChannelLabels names the four channels in wire order.
var ChannelLabels = [adcDacChannels]string{"ADC0", "ADC1", "DAC0", "DAC1"}

// DecodeAdcDac unpacks an AdcDac frame body.
func DecodeAdcDac(f Frame) (AdcDac, error) {
	if f.Header.FormatID != FormatAdcDac {
		return AdcDac{}, fmt.Errorf("stream: not an adc-dac frame: format %d", f.Header.FormatID)
	}
	batches := int(f.Header.Batches)
	if batches == 0 {
		return AdcDac{}, errors.New("stream: zero batches")
	}
	if len(f.Body)%2 != 0 {
		return AdcDac{}, fmt.Errorf("stream: odd payload length %d", len(f.Body))
	}
	total := len(f.Body) / 2
	if total == 0 || total%(batches*adcDacChannels) != 0 {
		return AdcDac{}, fmt.Errorf("stream: payload of %d samples does not divide into %d batches x %d channels",
			total, batches, adcDacChannels)
	}
	perBatch := total / (batches * adcDacChannels)

	out := AdcDac{Batches: batches}
	for ch := range out.Samples {
		out.Samples[ch] = make([]int16, 0, batches*perBatch)
	}

	// Wire order is batch-major: [batch][channel][sample].
	off := 0
	for b := 0; b < batches; b++ {
		for ch := 0; ch < adcDacChannels; ch++ {
			for i := 0; i < perBatch; i++ {
				v := binary.LittleEndian.Uint16(f.Body[off:])
				off += 2
				if ch >= 2 {
					v ^= 0x8000 // DAC offset binary
				}
				out.Samples[ch] = append(out.Samples[ch], int16(v))
			}
		}
	}
	return out, nil
}

// Volts scales one channel to volts.
func (d AdcDac) Volts(ch int) []float64 {
	out := make([]float64, len(d.Samples[ch]))
	for i, s := range d.Samples[ch] {
		out[i] = float64(s) * DACVoltsPerLSB
	}
	return out
}

package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var ErrInvalidWAV = errors.New("audio: invalid wav data")

type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

func ParseWAV(data []byte) (Format, []byte, error) {
	r := bytes.NewReader(data)

	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Format{}, nil, fmt.Errorf("%w: short header", ErrInvalidWAV)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return Format{}, nil, fmt.Errorf("%w: not a RIFF/WAVE file", ErrInvalidWAV)
	}

	var format Format
	haveFmt := false
	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(r, chunkID[:]); err != nil {
			return Format{}, nil, fmt.Errorf("%w: no data chunk", ErrInvalidWAV)
		}
		var size uint32
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return Format{}, nil, fmt.Errorf("%w: chunk size: %v", ErrInvalidWAV, err)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if size < 16 {
				return Format{}, nil, fmt.Errorf("%w: fmt chunk too small", ErrInvalidWAV)
			}
			var fmtChunk struct {
				AudioFormat   uint16
				Channels      uint16
				SampleRate    uint32
				ByteRate      uint32
				BlockAlign    uint16
				BitsPerSample uint16
			}
			if err := binary.Read(r, binary.LittleEndian, &fmtChunk); err != nil {
				return Format{}, nil, fmt.Errorf("%w: fmt chunk: %v", ErrInvalidWAV, err)
			}
			if fmtChunk.AudioFormat != 1 || fmtChunk.BitsPerSample != 16 {
				return Format{}, nil, fmt.Errorf("%w: only 16-bit PCM is supported", ErrInvalidWAV)
			}
			format = Format{
				SampleRate: int(fmtChunk.SampleRate),
				Channels:   int(fmtChunk.Channels),
				BitDepth:   int(fmtChunk.BitsPerSample),
			}
			haveFmt = true
			if _, err := r.Seek(int64(size-16)+int64(size%2), io.SeekCurrent); err != nil {
				return Format{}, nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
			}
		case "data":
			if !haveFmt {
				return Format{}, nil, fmt.Errorf("%w: data before fmt", ErrInvalidWAV)
			}
			samples := make([]byte, size)
			n, err := io.ReadFull(r, samples)
			if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
				return Format{}, nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
			}
			return format, samples[:n], nil
		default:
			if _, err := r.Seek(int64(size)+int64(size%2), io.SeekCurrent); err != nil {
				return Format{}, nil, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
			}
		}
	}
}

func EncodeWAV(format Format, samples []byte) []byte {
	var buf bytes.Buffer
	blockAlign := format.Channels * 2
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(format.Channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(format.SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(format.SampleRate*blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)
	return buf.Bytes()
}

func Beep() []byte {
	const (
		sampleRate = 44100
		freq       = 880.0
		pips       = 3
		pipLen     = sampleRate * 15 / 100
		gapLen     = sampleRate / 10
		amplitude  = 0.4 * math.MaxInt16
	)
	format := Format{SampleRate: sampleRate, Channels: 1, BitDepth: 16}
	samples := make([]byte, 0, pips*(pipLen+gapLen)*2)
	for p := 0; p < pips; p++ {
		for i := 0; i < pipLen; i++ {
			env := 1.0
			if fade := sampleRate / 200; i < fade {
				env = float64(i) / float64(fade)
			} else if i > pipLen-fade {
				env = float64(pipLen-i) / float64(fade)
			}
			v := int16(amplitude * env * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
			samples = binary.LittleEndian.AppendUint16(samples, uint16(v))
		}
		samples = append(samples, make([]byte, gapLen*2)...)
	}
	return EncodeWAV(format, samples)
}

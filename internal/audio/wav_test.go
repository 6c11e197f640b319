package audio

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestBeepParsesBack(t *testing.T) {
	format, samples, err := ParseWAV(Beep())
	require.NoError(t, err)
	require.Equal(t, Format{SampleRate: 44100, Channels: 1, BitDepth: 16}, format)
	// 3 pips of 150ms + 3 gaps of 100ms, 2 bytes per sample
	require.Equal(t, 3*(6615+4410)*2, len(samples))
}

func TestParseWAVSkipsUnknownChunks(t *testing.T) {
	format := Format{SampleRate: 8000, Channels: 2, BitDepth: 16}
	wav := EncodeWAV(format, []byte{1, 0, 2, 0, 3, 0, 4, 0})

	// splice a LIST chunk between the RIFF header and fmt
	extra := []byte("LIST")
	extra = binary.LittleEndian.AppendUint32(extra, 3)
	extra = append(extra, 'a', 'b', 'c', 0)
	spliced := append(append(append([]byte{}, wav[:12]...), extra...), wav[12:]...)

	got, samples, err := ParseWAV(spliced)
	require.NoError(t, err)
	require.Equal(t, format, got)
	require.Equal(t, []byte{1, 0, 2, 0, 3, 0, 4, 0}, samples)
}

func TestParseWAVRejectsGarbage(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("RIFF"), []byte("RIFF0000WAVX"), []byte("RIFF0000WAVE")} {
		_, _, err := ParseWAV(in)
		require.True(t, errors.Is(err, ErrInvalidWAV), "input %q: %v", in, err)
	}
}

func TestParseWAVRejectsNonPCM16(t *testing.T) {
	wav := EncodeWAV(Format{SampleRate: 8000, Channels: 1, BitDepth: 16}, []byte{0, 0})
	binary.LittleEndian.PutUint16(wav[34:36], 8)
	_, _, err := ParseWAV(wav)
	require.ErrorIs(t, err, ErrInvalidWAV)
}

func TestLoadPlayerDefaultsToBeep(t *testing.T) {
	p, err := LoadPlayer("", zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 44100, p.Format().SampleRate)

	_, err = LoadPlayer("/does/not/exist.wav", zerolog.Nop())
	require.Error(t, err)
}

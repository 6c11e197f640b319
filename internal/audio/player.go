package audio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/rs/zerolog"
)

var (
	ErrNotReady       = errors.New("audio: output device not ready")
	ErrFormatMismatch = errors.New("audio: sample format differs from the open device")
)

// oto allows one context per process.
var (
	globalCtx     *oto.Context
	globalFormat  Format
	globalCtxOnce sync.Once
	globalCtxErr  error
	globalMu      sync.Mutex
)

func initContext(format Format) error {
	globalCtxOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			globalMu.Lock()
			globalCtxErr = fmt.Errorf("audio: open context: %w", err)
			globalMu.Unlock()
			return
		}
		<-ready
		globalMu.Lock()
		globalCtx = ctx
		globalFormat = format
		globalMu.Unlock()
	})
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalCtxErr
}

func currentContext() (*oto.Context, Format, error) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCtxErr != nil {
		return nil, Format{}, globalCtxErr
	}
	if globalCtx == nil {
		return nil, Format{}, ErrNotReady
	}
	return globalCtx, globalFormat, nil
}

type Player struct {
	format  Format
	samples []byte
	log     zerolog.Logger

	mu      sync.Mutex
	stopCh  chan struct{}
	playing *oto.Player
}

func NewPlayer(wav []byte, log zerolog.Logger) (*Player, error) {
	format, samples, err := ParseWAV(wav)
	if err != nil {
		return nil, err
	}
	return &Player{format: format, samples: samples, log: log}, nil
}

func LoadPlayer(path string, log zerolog.Logger) (*Player, error) {
	if path == "" {
		return NewPlayer(Beep(), log)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return NewPlayer(data, log)
}

func (p *Player) Format() Format { return p.format }

// Init blocks until the device is ready.
func (p *Player) Init() error {
	if err := initContext(p.format); err != nil {
		return err
	}
	p.log.Info().Int("sample_rate", p.format.SampleRate).Int("channels", p.format.Channels).Msg("audio context ready")
	return nil
}

func (p *Player) PlayAlert() error {
	ctx, format, err := currentContext()
	if err != nil {
		return err
	}
	if format != p.format {
		return ErrFormatMismatch
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	stop := make(chan struct{})
	p.stopCh = stop
	player := ctx.NewPlayer(bytes.NewReader(p.samples))
	p.playing = player
	player.Play()
	go p.wait(player, stop)
	return nil
}

func (p *Player) wait(player *oto.Player, stop chan struct{}) {
	for player.IsPlaying() {
		select {
		case <-stop:
			player.Pause()
			_ = player.Close()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	if err := player.Close(); err != nil {
		p.log.Warn().Err(err).Msg("close audio player")
	}
	p.mu.Lock()
	if p.playing == player {
		p.playing = nil
		p.stopCh = nil
	}
	p.mu.Unlock()
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
	}
	p.playing = nil
}

package buttonnode

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SoundPlayer plays sounds by id without waiting for them to finish. It
// reports whether playback was started.
type SoundPlayer interface {
	PlaySound(id string) bool
}

// AudioManager plays sounds and music from a Resources set through an
// Ebitengine audio context, honoring the user's Settings.
//
// Sound effects are fire-and-forget: every request gets its own player over
// cached PCM, so overlapping presses overlap audibly. A manager with a nil
// context stays silent and reports false.
type AudioManager struct {
	ctx      *audio.Context
	res      *Resources
	settings *SettingsStore

	pcm map[string][]byte

	music   *audio.Player
	musicID string
}

// NewAudioManager creates a manager. settings may be nil, in which case
// defaults apply.
func NewAudioManager(ctx *audio.Context, res *Resources, settings *SettingsStore) *AudioManager {
	return &AudioManager{
		ctx:      ctx,
		res:      res,
		settings: settings,
		pcm:      make(map[string][]byte),
	}
}

func (am *AudioManager) currentSettings() Settings {
	if am.settings == nil {
		return DefaultSettings()
	}
	return am.settings.Settings()
}

// PlaySound starts sound id at the configured volume.
func (am *AudioManager) PlaySound(id string) bool {
	if id == "" {
		log.Printf("[AudioManager] Warning: empty sound id")
		return false
	}
	s := am.currentSettings()
	if !s.SoundEnabled || am.ctx == nil {
		return false
	}
	pcm, err := am.decoded(id)
	if err != nil {
		log.Printf("[AudioManager] Warning: %v", err)
		return false
	}
	p := am.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.SoundVolume)
	p.Play()
	return true
}

// PlayMusic loops id as background music, replacing any current track.
// Playing the track that is already playing does nothing.
func (am *AudioManager) PlayMusic(id string) bool {
	if !am.currentSettings().MusicEnabled || am.ctx == nil {
		return false
	}
	if am.musicID == id && am.music != nil && am.music.IsPlaying() {
		return true
	}
	am.StopMusic()
	pcm, err := am.decoded(id)
	if err != nil {
		log.Printf("[AudioManager] Warning: %v", err)
		return false
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := am.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: music %s: %v", id, err)
		return false
	}
	p.Play()
	am.music = p
	am.musicID = id
	log.Printf("[AudioManager] Playing music: %s", id)
	return true
}

// StopMusic stops the current track, if any.
func (am *AudioManager) StopMusic() {
	if am.music == nil {
		return
	}
	am.music.Pause()
	am.music = nil
	am.musicID = ""
}

// MusicPlaying reports whether a track is playing.
func (am *AudioManager) MusicPlaying() bool {
	return am.music != nil && am.music.IsPlaying()
}

// Preload decodes the given sounds ahead of their first use.
func (am *AudioManager) Preload(ids ...string) {
	if am.ctx == nil {
		return
	}
	for _, id := range ids {
		if _, err := am.decoded(id); err != nil {
			log.Printf("[AudioManager] Warning: preload: %v", err)
		}
	}
}

// decoded returns id's PCM at the context sample rate, decoding on first use.
func (am *AudioManager) decoded(id string) ([]byte, error) {
	if pcm, ok := am.pcm[id]; ok {
		return pcm, nil
	}
	if am.res == nil {
		return nil, fmt.Errorf("sound %q: no resources", id)
	}
	sd, err := am.res.Sound(id)
	if err != nil {
		return nil, err
	}
	pcm, err := decodeSound(am.ctx.SampleRate(), sd)
	if err != nil {
		return nil, fmt.Errorf("sound %q: %w", id, err)
	}
	am.pcm[id] = pcm
	return pcm, nil
}

// decodeSound converts encoded bytes to 16-bit stereo PCM at sampleRate.
func decodeSound(sampleRate int, sd SoundData) ([]byte, error) {
	src := bytes.NewReader(sd.Data)
	var (
		stream io.Reader
		err    error
	)
	switch sd.Format {
	case SoundWAV:
		stream, err = wav.DecodeWithSampleRate(sampleRate, src)
	case SoundMP3:
		stream, err = mp3.DecodeWithSampleRate(sampleRate, src)
	case SoundOGG:
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported format %s", sd.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", sd.Format, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sd.Format, err)
	}
	return pcm, nil
}

package buttonnode

import (
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder for image.Decode
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// SoundFormat identifies how stored sound bytes are encoded.
type SoundFormat uint8

const (
	SoundWAV SoundFormat = iota
	SoundMP3
	SoundOGG
)

// String returns the usual file extension for the format, without the dot.
func (f SoundFormat) String() string {
	switch f {
	case SoundWAV:
		return "wav"
	case SoundMP3:
		return "mp3"
	case SoundOGG:
		return "ogg"
	default:
		return "unknown"
	}
}

// soundFormatForPath picks the format from a file extension.
func soundFormatForPath(p string) (SoundFormat, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".wav":
		return SoundWAV, nil
	case ".mp3":
		return SoundMP3, nil
	case ".ogg":
		return SoundOGG, nil
	default:
		return 0, fmt.Errorf("unsupported sound format: %s", p)
	}
}

// ManifestEntry maps a resource id to a path inside the resource filesystem.
type ManifestEntry struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Manifest lists the images, sounds and fonts a Resources can load.
//
//	basePath: assets
//	images:
//	  - id: PlayButtonNormal
//	    path: images/play_normal.png
//	sounds:
//	  - id: NormalButtonSound
//	    path: sounds/click.wav
//	fonts:
//	  - id: Chalkduster
//	    path: fonts/chalk.ttf
type Manifest struct {
	BasePath string          `yaml:"basePath"`
	Images   []ManifestEntry `yaml:"images"`
	Sounds   []ManifestEntry `yaml:"sounds"`
	Fonts    []ManifestEntry `yaml:"fonts"`
}

// SoundData is an encoded sound ready for decoding.
type SoundData struct {
	Format SoundFormat
	Data   []byte
}

// Resources resolves images and sounds by id. Entries are either
// registered in memory or listed in a manifest and loaded lazily from a
// filesystem on first use.
type Resources struct {
	fsys fs.FS

	imagePaths map[string]string
	soundPaths map[string]string

	textures map[string]Texture
	sounds   map[string]SoundData
}

// NewResources creates an empty resource set reading from fsys. fsys may be
// nil when everything is registered in memory.
func NewResources(fsys fs.FS) *Resources {
	return &Resources{
		fsys:       fsys,
		imagePaths: make(map[string]string),
		soundPaths: make(map[string]string),
		textures:   make(map[string]Texture),
		sounds:     make(map[string]SoundData),
	}
}

// LoadManifest reads a YAML manifest from the resource filesystem. Images
// and sounds are recorded for lazy loading; fonts are registered at once.
func (r *Resources) LoadManifest(name string) error {
	if r.fsys == nil {
		return fmt.Errorf("load manifest %s: no filesystem", name)
	}
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", name, err)
	}
	return r.ParseManifest(data)
}

// ParseManifest applies a YAML manifest held in memory.
func (r *Resources) ParseManifest(data []byte) error {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}
	for _, e := range m.Images {
		if e.ID == "" {
			return fmt.Errorf("parse manifest: image %q has no id", e.Path)
		}
		r.imagePaths[e.ID] = path.Join(m.BasePath, e.Path)
	}
	for _, e := range m.Sounds {
		if e.ID == "" {
			return fmt.Errorf("parse manifest: sound %q has no id", e.Path)
		}
		p := path.Join(m.BasePath, e.Path)
		if _, err := soundFormatForPath(p); err != nil {
			return fmt.Errorf("parse manifest: sound %s: %w", e.ID, err)
		}
		r.soundPaths[e.ID] = p
	}
	for _, e := range m.Fonts {
		if err := r.loadFont(e.ID, path.Join(m.BasePath, e.Path)); err != nil {
			return fmt.Errorf("parse manifest: %w", err)
		}
	}
	log.Printf("[Resources] Manifest loaded: %d images, %d sounds, %d fonts",
		len(m.Images), len(m.Sounds), len(m.Fonts))
	return nil
}

func (r *Resources) loadFont(id, p string) error {
	if r.fsys == nil {
		return fmt.Errorf("font %s: no filesystem", id)
	}
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return fmt.Errorf("font %s: %w", id, err)
	}
	return RegisterFont(id, data)
}

// RegisterImage stores img under id, replacing any earlier entry.
func (r *Resources) RegisterImage(id string, img *ebiten.Image) {
	r.textures[id] = NewTexture(id, img)
}

// RegisterSound stores encoded sound bytes under id.
func (r *Resources) RegisterSound(id string, format SoundFormat, data []byte) {
	r.sounds[id] = SoundData{Format: format, Data: data}
}

// LoadTexture returns the texture for id, decoding it from the filesystem
// the first time.
func (r *Resources) LoadTexture(id string) (Texture, error) {
	if tex, ok := r.textures[id]; ok {
		return tex, nil
	}
	p, ok := r.imagePaths[id]
	if !ok {
		return Texture{}, fmt.Errorf("image %q: not found", id)
	}
	if r.fsys == nil {
		return Texture{}, fmt.Errorf("image %q: no filesystem", id)
	}
	f, err := r.fsys.Open(p)
	if err != nil {
		return Texture{}, fmt.Errorf("image %q: %w", id, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return Texture{}, fmt.Errorf("image %q: decode %s: %w", id, p, err)
	}
	tex := NewTexture(id, ebiten.NewImageFromImage(img))
	r.textures[id] = tex
	return tex, nil
}

// Texture resolves an image name to a texture. The empty name gives the
// empty texture. A name that cannot be loaded gives the magenta
// placeholder and a log line.
func (r *Resources) Texture(name string) Texture {
	if name == "" {
		return Texture{}
	}
	if r == nil {
		return PlaceholderTexture(name)
	}
	tex, err := r.LoadTexture(name)
	if err != nil {
		log.Printf("[Resources] Warning: %v, using placeholder", err)
		tex = PlaceholderTexture(name)
		r.textures[name] = tex
	}
	return tex
}

// HasSound reports whether id names a registered or listed sound.
func (r *Resources) HasSound(id string) bool {
	if _, ok := r.sounds[id]; ok {
		return true
	}
	_, ok := r.soundPaths[id]
	return ok
}

// Sound returns the encoded bytes for id, reading them from the filesystem
// the first time.
func (r *Resources) Sound(id string) (SoundData, error) {
	if sd, ok := r.sounds[id]; ok {
		return sd, nil
	}
	p, ok := r.soundPaths[id]
	if !ok {
		return SoundData{}, fmt.Errorf("sound %q: not found", id)
	}
	format, err := soundFormatForPath(p)
	if err != nil {
		return SoundData{}, fmt.Errorf("sound %q: %w", id, err)
	}
	if r.fsys == nil {
		return SoundData{}, fmt.Errorf("sound %q: no filesystem", id)
	}
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return SoundData{}, fmt.Errorf("sound %q: %w", id, err)
	}
	sd := SoundData{Format: format, Data: data}
	r.sounds[id] = sd
	return sd, nil
}

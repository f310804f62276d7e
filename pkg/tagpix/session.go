package tagpix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"k8s.io/klog/v2"
)

// ErrNoImageLoaded is returned when saving without any image loaded.
var ErrNoImageLoaded = errors.New("no image loaded")

// Messages shown to the user after a save attempt.
var (
	NoImageMessage = "No image loaded."
	SavedMessage   = "Tags saved successfully!"
)

// Session is the currently loaded image set, the position within it, and
// the tags of the active image. It is not safe for concurrent use.
type Session struct {
	c      *Config
	dir    string
	images []string
	index  int
	text   string
}

// NewSession returns an empty session.
func NewSession(c *Config) *Session {
	if c == nil {
		c = DefaultConfig()
	}
	return &Session{c: c}
}

// Config returns the session configuration.
func (s *Session) Config() *Config {
	return s.c
}

// LoadFolder replaces the image set with the images directly inside dir.
// A folder without images leaves the session empty, which is not an error.
func (s *Session) LoadFolder(dir string) error {
	is, err := Find(dir)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("abs: %w", err)
	}

	klog.Infof("loaded %d images from %s", len(is), abs)
	s.dir = abs
	s.images = is
	s.index = 0
	return s.load()
}

// LoadSingle replaces the image set with one dropped file. Paths that do not
// exist or are not images are ignored and false is returned.
func (s *Session) LoadSingle(path string) (bool, error) {
	path = strings.TrimSpace(path)
	if !IsImage(path) {
		klog.V(1).Infof("ignoring drop of %q: unsupported extension", path)
		return false, nil
	}

	st, err := os.Stat(path)
	if err != nil || !st.Mode().IsRegular() {
		klog.V(1).Infof("ignoring drop of %q: not a file", path)
		return false, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("abs: %w", err)
	}

	s.dir = ""
	s.images = []string{abs}
	s.index = 0
	return true, s.load()
}

// Next moves to the following image. It does nothing at the last image.
func (s *Session) Next() (bool, error) {
	if s.index >= len(s.images)-1 {
		return false, nil
	}
	s.index++
	return true, s.load()
}

// Prev moves to the preceding image. It does nothing at the first image.
func (s *Session) Prev() (bool, error) {
	if len(s.images) == 0 || s.index == 0 {
		return false, nil
	}
	s.index--
	return true, s.load()
}

// Refresh rescans the loaded folder. The current image keeps its unsaved
// tags if it is still present.
func (s *Session) Refresh() error {
	if s.dir == "" {
		return nil
	}

	is, err := Find(s.dir)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	cur, ok := s.Current()
	s.images = is
	if ok {
		if i := slices.Index(is, cur); i >= 0 {
			s.index = i
			return nil
		}
	}

	if s.index > len(is)-1 {
		s.index = max(len(is)-1, 0)
	}
	return s.load()
}

// load replaces the tag text with the sidecar contents of the current image.
func (s *Session) load() error {
	s.text = ""
	cur, ok := s.Current()
	if !ok {
		return nil
	}

	tags, err := ReadTags(cur)
	if err != nil {
		return fmt.Errorf("load %s: %w", cur, err)
	}
	s.text = FormatTags(tags)
	klog.V(1).Infof("%s [%d/%d] tags: %v", cur, s.index+1, len(s.images), tags)
	return nil
}

// Current returns the path of the active image.
func (s *Session) Current() (string, bool) {
	if len(s.images) == 0 {
		return "", false
	}
	return s.images[s.index], true
}

// Index returns the position of the active image.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of images loaded.
func (s *Session) Len() int {
	return len(s.images)
}

// Images returns a copy of the loaded image paths.
func (s *Session) Images() []string {
	return slices.Clone(s.images)
}

// Dir returns the loaded folder, or "" when a single file was dropped.
func (s *Session) Dir() string {
	return s.dir
}

// Text returns the editable tag text of the active image.
func (s *Session) Text() string {
	return s.text
}

// SetText replaces the tag text. It is saved verbatim.
func (s *Session) SetText(text string) {
	s.text = text
}

// Tags returns the tags of the active image.
func (s *Session) Tags() []string {
	return ParseTags(s.text)
}

// AddTag adds a trimmed tag unless it is empty or already present.
func (s *Session) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}

	tags := s.Tags()
	if slices.Contains(tags, tag) {
		return false
	}
	s.text = FormatTags(append(tags, tag))
	return true
}

// Save writes the tag text to the sidecar of the active image and returns its path.
func (s *Session) Save() (string, error) {
	cur, ok := s.Current()
	if !ok {
		return "", ErrNoImageLoaded
	}

	p, err := WriteTags(cur, s.text)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", cur, err)
	}
	klog.Infof("saved tags for %s to %s", cur, p)
	return p, nil
}

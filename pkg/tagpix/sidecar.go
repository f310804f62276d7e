package tagpix

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"
)

// Separator joins tags inside a sidecar file.
var Separator = ", "

// SidecarPath returns the tag file for an image: the same path with a .txt extension.
func SidecarPath(image string) string {
	return strings.TrimSuffix(image, filepath.Ext(image)) + ".txt"
}

// ParseTags splits sidecar text into tags. Empty text yields no tags.
func ParseTags(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, Separator)
}

// FormatTags joins tags the way they are stored on disk.
func FormatTags(tags []string) string {
	return strings.Join(tags, Separator)
}

// uniq removes repeated tags, keeping the first occurrence.
func uniq(tags []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ReadTags reads the sidecar for image. A missing sidecar means no tags.
func ReadTags(image string) ([]string, error) {
	p := SidecarPath(image)
	bs, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		klog.V(1).Infof("no sidecar for %s", image)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}
	return uniq(ParseTags(string(bs))), nil
}

// WriteTags overwrites the sidecar for image with text, unmodified, and returns its path.
func WriteTags(image string, text string) (string, error) {
	p := SidecarPath(image)
	klog.V(1).Infof("writing %d bytes to %s", len(text), p)
	if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write tags: %w", err)
	}
	return p, nil
}

package tagpix

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// Extensions are the lower-case file extensions treated as images.
var Extensions = []string{".png", ".jpg", ".jpeg"}

// IsImage reports whether path has an image extension, ignoring case.
func IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Find returns the absolute paths of the images directly inside dir, sorted by name.
// Subdirectories are not descended into.
func Find(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("abs: %w", err)
	}

	des, err := godirwalk.ReadDirents(abs, nil)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", abs, err)
	}

	found := []string{}
	for _, de := range des {
		name := de.Name()
		if name[0] == '.' || !IsImage(name) {
			continue
		}

		path := filepath.Join(abs, name)
		if de.IsDir() {
			continue
		}

		if de.IsSymlink() {
			st, err := os.Stat(path)
			if err != nil || !st.Mode().IsRegular() {
				klog.V(1).Infof("skipping %s: not a regular file", path)
				continue
			}
		}

		klog.V(2).Infof("found %s", path)
		found = append(found, path)
	}

	sort.Strings(found)
	return found, nil
}

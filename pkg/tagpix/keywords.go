package tagpix

import (
	"fmt"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"
)

// EmbedKeywords stores tags in the Keywords metadata of the image at path.
func EmbedKeywords(et *exiftool.Exiftool, path string, tags []string) error {
	fms := et.ExtractMetadata(path)
	if len(fms) == 0 {
		return fmt.Errorf("no metadata for %s", path)
	}
	if fms[0].Err != nil {
		return fmt.Errorf("extract fail for %q: %w", path, fms[0].Err)
	}

	old, err := fms[0].GetStrings("Keywords")
	if err != nil {
		klog.V(1).Infof("%s has no keywords: %v", path, err)
	}
	klog.Infof("keywords for %s: %v -> %v", path, old, tags)

	fms[0].SetStrings("Keywords", tags)
	et.WriteMetadata(fms)
	if fms[0].Err != nil {
		return fmt.Errorf("write metadata for %s: %w", path, fms[0].Err)
	}
	return nil
}

// embedtags copies the tags in each image's .txt file into its Keywords metadata.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/barasher/go-exiftool"
	"github.com/otiai10/copy"
	"k8s.io/klog/v2"

	"github.com/tstromberg/tagpix/pkg/tagpix"
)

var (
	dryRun    = flag.Bool("n", false, "dry-run mode, don't modify images")
	backupDir = flag.String("backup", "", "copy each image here before modifying it")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if len(flag.Args()) != 1 {
		klog.Exitf("Usage: %s [-n] [-backup <dir>] <input_dir>", os.Args[0])
	}
	dir := flag.Args()[0]

	is, err := tagpix.Find(dir)
	if err != nil {
		klog.Exitf("unable to find images: %v", err)
	}

	e, err := exiftool.NewExiftool()
	if err != nil {
		klog.Exitf("exiftool: %v", err)
	}
	defer func() {
		if err := e.Close(); err != nil {
			klog.Errorf("Failed to close exiftool: %v", err)
		}
	}()

	embedded := 0
	for _, i := range is {
		tags, err := tagpix.ReadTags(i)
		if err != nil {
			klog.Errorf("read tags: %v", err)
			continue
		}
		if len(tags) == 0 {
			klog.V(1).Infof("no tags for %s", i)
			continue
		}

		klog.Infof("%s -> %v", i, tags)
		if *dryRun {
			continue
		}

		if *backupDir != "" {
			dst := filepath.Join(*backupDir, filepath.Base(i))
			if err := copy.Copy(i, dst); err != nil {
				klog.Errorf("backup %s: %v", i, err)
				continue
			}
		}

		if err := tagpix.EmbedKeywords(e, i, tags); err != nil {
			klog.Errorf("embed: %v", err)
			continue
		}
		embedded++
	}

	klog.Infof("embedded tags into %d of %d images in %s", embedded, len(is), dir)
}

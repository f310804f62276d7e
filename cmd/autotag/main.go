// autotag writes Gemini-suggested tags for images that have no tag file yet.
package main

import (
	"context"
	"flag"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"google.golang.org/genai"
	"k8s.io/klog/v2"

	"github.com/tstromberg/tagpix/pkg/tagpix"
)

var (
	dryRun    = flag.Bool("n", false, "dry-run mode, don't write tag files")
	overwrite = flag.Bool("o", false, "overwrite existing tag files")
	modelName = flag.String("model", "gemini-2.5-flash", "Gemini model to ask for tags")
	maxSize   = flag.Int("max-size", 512, "longer side of the image sent to the model, in pixels")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	klog.Infof("autotag starting with %d input directories", len(flag.Args()))

	if len(flag.Args()) == 0 {
		klog.Fatalf("No input directories provided. Usage: %s [-n] [-o] <input_dir1> [input_dir2 ...]", os.Args[0])
	}

	ctx := context.Background()
	cfg := &genai.ClientConfig{
		APIKey:  os.Getenv("GOOGLE_AI_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		klog.Fatalf("genai: %v", err)
	}

	total := 0
	tagged := 0
	for _, dir := range flag.Args() {
		is, err := tagpix.Find(dir)
		if err != nil {
			klog.Fatalf("unable to find images in %s: %v", dir, err)
		}
		klog.Infof("Processing %s with %d images", dir, len(is))

		for _, i := range is {
			total++
			existing, err := tagpix.ReadTags(i)
			if err != nil {
				klog.Errorf("read tags: %v", err)
				continue
			}
			if !*overwrite && len(existing) > 0 {
				klog.Infof("%s has tags: %v", i, existing)
				continue
			}

			tags, err := tagpix.Suggest(ctx, client.Models, *modelName, i, *maxSize)
			if err != nil {
				klog.Errorf("suggest %s: %v", i, err)
				continue
			}

			klog.Infof("adding tags to %s: %v", i, tags)
			if *dryRun || len(tags) == 0 {
				continue
			}
			if _, err := tagpix.WriteTags(i, tagpix.FormatTags(tags)); err != nil {
				klog.Errorf("write %s: %v", i, err)
				continue
			}
			tagged++
		}
	}

	klog.Infof("autotag completed. Tagged %d of %d images across %d directories", tagged, total, len(flag.Args()))
}

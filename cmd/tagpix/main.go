// tagpix views a folder of images one at a time and saves tags for each
// image to a sibling .txt file.
package main

import (
	"context"
	"flag"
	"net/http"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"k8s.io/klog/v2"

	"github.com/tstromberg/tagpix/pkg/manage"
	"github.com/tstromberg/tagpix/pkg/tagpix"
	"github.com/tstromberg/tagpix/pkg/ui"
)

var (
	dir       = flag.String("dir", "", "folder of images to open at startup")
	presets   = flag.String("presets", strings.Join(tagpix.DefaultPresets, ","), "comma-separated tags offered as buttons")
	maxSize   = flag.Int("max-size", tagpix.DefaultMaxSize, "length of the longer preview side, in pixels")
	listen    = flag.Bool("listen", false, "serve the tagging UI via HTTP instead of opening a window")
	addr      = flag.String("addr", "localhost:12800", "host:port to bind to in listen mode")
	watchFlag = flag.Bool("watch", false, "watch the --dir folder for added or removed images")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *maxSize <= 0 {
		klog.Exitf("--max-size must be positive, got %d", *maxSize)
	}

	c := &tagpix.Config{
		MaxSize: *maxSize,
		Presets: splitPresets(*presets),
	}
	s := tagpix.NewSession(c)

	if *listen {
		serve(s, *addr)
		return
	}
	desktop(s)
}

func splitPresets(s string) []string {
	ps := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			ps = append(ps, p)
		}
	}
	return ps
}

// desktop opens the tagging window and blocks until it is closed.
func desktop(s *tagpix.Session) {
	a := ui.New(app.NewWithID("com.github.tstromberg.tagpix"), s)
	if *dir != "" {
		a.LoadFolder(*dir)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *watchFlag && s.Dir() != "" {
		go watch(ctx, s.Dir(), func() { fyne.Do(a.Refresh) })
	}

	a.Window().ShowAndRun()
}

// serve serves the tagging UI via HTTP.
func serve(s *tagpix.Session, addr string) {
	srv := manage.New(s)
	if *dir != "" {
		if err := s.LoadFolder(*dir); err != nil {
			klog.Exitf("load %s: %v", *dir, err)
		}
	}

	if *watchFlag && s.Dir() != "" {
		go watch(context.Background(), s.Dir(), srv.Refresh)
	}

	klog.Infof("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		klog.Exitf("listen failed: %v", err)
	}
}

func watch(ctx context.Context, dir string, onChange func()) {
	if err := tagpix.Watch(ctx, dir, onChange); err != nil {
		klog.Errorf("watch %s: %v", dir, err)
	}
}

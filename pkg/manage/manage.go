// Package manage provides HTTP handlers for tagging images from a browser.
package manage

import (
	"errors"
	"net/http"
	"sync"

	"github.com/tstromberg/tagpix/pkg/tagpix"
	"k8s.io/klog/v2"
)

// flash is a one-shot banner shown on the next page render.
type flash struct {
	Text  string
	Error bool
}

// Server is a server for the tagpix web app. All session access is serialized.
type Server struct {
	mu    sync.Mutex
	s     *tagpix.Session
	flash *flash
}

// New creates a new server.
func New(s *tagpix.Session) *Server {
	return &Server{s: s}
}

// Handler returns the routes served in listen mode.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.IndexHandler())
	mux.HandleFunc("GET /image", s.ImageHandler())
	mux.HandleFunc("GET /style.css", s.StyleHandler())
	mux.HandleFunc("POST /folder", s.FolderHandler())
	mux.HandleFunc("POST /drop", s.DropHandler())
	mux.HandleFunc("POST /next", s.NextHandler())
	mux.HandleFunc("POST /prev", s.PrevHandler())
	mux.HandleFunc("POST /add", s.AddHandler())
	mux.HandleFunc("POST /tags", s.TagsHandler())
	mux.HandleFunc("POST /save", s.SaveHandler())
	return mux
}

// Refresh rescans the loaded folder, for use as a watch callback.
func (s *Server) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.s.Refresh(); err != nil {
		klog.Errorf("refresh: %v", err)
		s.flash = &flash{Text: err.Error(), Error: true}
	}
}

// IndexHandler renders the tagging page.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		bs, err := renderIndex(s.s, s.flash)
		s.flash = nil
		s.mu.Unlock()

		if err != nil {
			klog.Errorf("render: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(bs); err != nil {
			klog.Errorf("write: %v", err)
		}
	}
}

// ImageHandler serves a resized preview of the current image.
func (s *Server) ImageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		cur, ok := s.s.Current()
		size := s.s.Config().PreviewSize()
		s.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}

		img, err := tagpix.Preview(cur, size)
		if err != nil {
			klog.Errorf("preview %s: %v", cur, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Cache-Control", "no-store")
		if err := tagpix.EncodePreview(w, img); err != nil {
			klog.Errorf("encode %s: %v", cur, err)
		}
	}
}

// StyleHandler serves the page stylesheet.
func (s *Server) StyleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		if _, err := w.Write([]byte(styleText)); err != nil {
			klog.Errorf("write: %v", err)
		}
	}
}

// FolderHandler loads every image in the posted "dir".
func (s *Server) FolderHandler() http.HandlerFunc {
	return s.action(func(r *http.Request) error {
		dir := r.FormValue("dir")
		if dir == "" {
			return nil
		}
		return s.s.LoadFolder(dir)
	})
}

// DropHandler loads the single image at the posted "path". Unsupported paths are ignored.
func (s *Server) DropHandler() http.HandlerFunc {
	return s.action(func(r *http.Request) error {
		_, err := s.s.LoadSingle(r.FormValue("path"))
		return err
	})
}

// NextHandler moves to the next image.
func (s *Server) NextHandler() http.HandlerFunc {
	return s.action(func(_ *http.Request) error {
		_, err := s.s.Next()
		return err
	})
}

// PrevHandler moves to the previous image.
func (s *Server) PrevHandler() http.HandlerFunc {
	return s.action(func(_ *http.Request) error {
		_, err := s.s.Prev()
		return err
	})
}

// AddHandler adds the posted "tag" to the current tags.
func (s *Server) AddHandler() http.HandlerFunc {
	return s.action(func(r *http.Request) error {
		s.applyText(r)
		s.s.AddTag(r.FormValue("tag"))
		return nil
	})
}

// TagsHandler replaces the tag text with the posted "text".
func (s *Server) TagsHandler() http.HandlerFunc {
	return s.action(func(r *http.Request) error {
		s.applyText(r)
		return nil
	})
}

// SaveHandler writes the tag text, including any posted edits, to the sidecar file.
func (s *Server) SaveHandler() http.HandlerFunc {
	return s.action(func(r *http.Request) error {
		s.applyText(r)
		if _, err := s.s.Save(); err != nil {
			return err
		}
		s.flash = &flash{Text: tagpix.SavedMessage}
		return nil
	})
}

// applyText copies the edited tag box into the session when the form carries it.
func (s *Server) applyText(r *http.Request) {
	if _, ok := r.PostForm["text"]; ok {
		s.s.SetText(r.PostForm.Get("text"))
	}
}

// action runs f under the session lock, records any error as a banner, and
// redirects back to the page.
func (s *Server) action(f func(*http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		err := f(r)
		switch {
		case errors.Is(err, tagpix.ErrNoImageLoaded):
			s.flash = &flash{Text: tagpix.NoImageMessage, Error: true}
		case err != nil:
			klog.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
			s.flash = &flash{Text: err.Error(), Error: true}
		}
		s.mu.Unlock()

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

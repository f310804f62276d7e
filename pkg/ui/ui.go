// Package ui is the desktop window for tagging images.
package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"k8s.io/klog/v2"

	"github.com/tstromberg/tagpix/pkg/tagpix"
)

// Title is the window title.
var Title = "TagPix - Image Tagger"

// App is the tagging window and the session it drives. All methods must be
// called from the Fyne event thread.
type App struct {
	win fyne.Window
	s   *tagpix.Session

	image       *canvas.Image
	placeholder *widget.Label
	caption     *widget.Label
	tagLabels   *fyne.Container
	tagText     *widget.Entry
	tagEntry    *widget.Entry

	loadBtn *widget.Button
	prevBtn *widget.Button
	nextBtn *widget.Button
	addBtn  *widget.Button
	saveBtn *widget.Button
	presets []*widget.Button
}

// New builds the main window for s.
func New(fa fyne.App, s *tagpix.Session) *App {
	a := &App{s: s, win: fa.NewWindow(Title)}
	a.win.SetContent(a.build())
	a.win.Resize(fyne.NewSize(800, 600))
	a.win.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		a.Drop(uris)
	})
	a.render()
	return a
}

// Window returns the main window.
func (a *App) Window() fyne.Window {
	return a.win
}

func (a *App) build() fyne.CanvasObject {
	a.image = canvas.NewImageFromImage(nil)
	a.image.FillMode = canvas.ImageFillContain
	a.image.SetMinSize(fyne.NewSize(480, 360))
	a.placeholder = widget.NewLabel("Drop Image Here")
	a.caption = widget.NewLabel("")

	a.tagLabels = container.NewHBox()

	a.tagText = widget.NewMultiLineEntry()
	a.tagText.Wrapping = fyne.TextWrapWord
	a.tagText.SetPlaceHolder("tag, another tag")
	a.tagText.OnChanged = func(text string) {
		a.s.SetText(text)
		a.renderLabels()
	}

	a.tagEntry = widget.NewEntry()
	a.tagEntry.SetPlaceHolder("New tag")
	a.tagEntry.OnSubmitted = func(string) { a.addFromEntry() }

	a.loadBtn = widget.NewButton("Load Folder", a.chooseFolder)
	a.prevBtn = widget.NewButton("Previous", a.Prev)
	a.nextBtn = widget.NewButton("Next", a.Next)
	a.addBtn = widget.NewButton("Add Tag", a.addFromEntry)
	a.saveBtn = widget.NewButton("Save Tags", a.Save)

	presetRow := container.NewHBox()
	for _, p := range a.s.Config().Presets {
		b := widget.NewButton(p, func() { a.AddTag(p) })
		a.presets = append(a.presets, b)
		presetRow.Add(b)
	}

	preview := container.NewStack(container.NewCenter(a.placeholder), a.image)
	controls := container.NewVBox(
		a.caption,
		a.tagLabels,
		presetRow,
		a.tagText,
		container.NewBorder(nil, nil, nil, a.addBtn, a.tagEntry),
		container.NewHBox(a.loadBtn, a.prevBtn, a.nextBtn, a.saveBtn),
	)
	return container.NewBorder(nil, controls, nil, nil, preview)
}

func (a *App) chooseFolder() {
	dialog.ShowFolderOpen(func(l fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, a.win)
			return
		}
		if l == nil {
			return
		}
		a.LoadFolder(l.Path())
	}, a.win)
}

// LoadFolder loads every image in dir and shows the first one.
func (a *App) LoadFolder(dir string) {
	a.report(a.s.LoadFolder(dir))
	a.render()
}

// Drop opens the first dropped file. Anything that is not an image is ignored.
func (a *App) Drop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	ok, err := a.s.LoadSingle(uris[0].Path())
	a.report(err)
	if ok || err != nil {
		a.render()
	}
}

// Next shows the following image.
func (a *App) Next() {
	moved, err := a.s.Next()
	a.report(err)
	if moved {
		a.render()
	}
}

// Prev shows the preceding image.
func (a *App) Prev() {
	moved, err := a.s.Prev()
	a.report(err)
	if moved {
		a.render()
	}
}

// Refresh rescans the loaded folder, keeping unsaved edits to the current image.
func (a *App) Refresh() {
	a.s.SetText(a.tagText.Text)
	a.report(a.s.Refresh())
	a.render()
}

// AddTag adds tag to the current tag text.
func (a *App) AddTag(tag string) {
	a.s.SetText(a.tagText.Text)
	if a.s.AddTag(tag) {
		a.tagText.SetText(a.s.Text())
		a.renderLabels()
	}
}

func (a *App) addFromEntry() {
	a.AddTag(a.tagEntry.Text)
	a.tagEntry.SetText("")
}

// Save writes the tag text to the sidecar of the current image.
func (a *App) Save() {
	a.s.SetText(a.tagText.Text)
	p, err := a.s.Save()
	if errors.Is(err, tagpix.ErrNoImageLoaded) {
		dialog.ShowError(errors.New(tagpix.NoImageMessage), a.win)
		return
	}
	if err != nil {
		a.report(err)
		return
	}
	klog.V(1).Infof("saved %s", p)
	dialog.ShowInformation("Saved", tagpix.SavedMessage, a.win)
}

// report shows err in a dialog. I/O failures never end the program.
func (a *App) report(err error) {
	if err == nil {
		return
	}
	klog.Errorf("%v", err)
	dialog.ShowError(err, a.win)
}

// render redraws everything from the session. The preview is decoded and
// resized again on every call.
func (a *App) render() {
	cur, ok := a.s.Current()
	a.prevBtn.Disable()
	a.nextBtn.Disable()

	if !ok {
		a.image.Image = nil
		a.placeholder.Show()
		a.caption.SetText("")
	} else {
		img, err := tagpix.Preview(cur, a.s.Config().PreviewSize())
		if err != nil {
			a.report(err)
			img = nil
		}
		a.image.Image = img
		a.placeholder.Hide()
		a.caption.SetText(fmt.Sprintf("%s (%d/%d)", filepath.Base(cur), a.s.Index()+1, a.s.Len()))

		if a.s.Index() > 0 {
			a.prevBtn.Enable()
		}
		if a.s.Index() < a.s.Len()-1 {
			a.nextBtn.Enable()
		}
	}
	a.image.Refresh()

	a.tagText.SetText(a.s.Text())
	a.renderLabels()
}

func (a *App) renderLabels() {
	a.tagLabels.RemoveAll()
	for _, t := range a.s.Tags() {
		a.tagLabels.Add(widget.NewLabel(t))
	}
}

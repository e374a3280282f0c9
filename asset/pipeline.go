package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/hudsprite/texture"
)

const (
	imageExt = ".png"
	workers  = 4
)

var errCancelled = errors.New("asset: pack cancelled")

// LayoutFunc returns the texture layout a named region must be encoded with,
// or false if the name isn't a known region.
type LayoutFunc func(name string) (texture.Layout, bool)

// Packer builds a Bank from a directory tree of PNG images. Each image is
// stored under its filename without the extension.
type Packer struct {
	layout LayoutFunc
	logger *log.Logger
}

// NewPacker returns a Packer encoding images according to layout. A nil
// logger discards output.
func NewPacker(layout LayoutFunc, logger *log.Logger) *Packer {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Packer{
		layout: layout,
		logger: logger,
	}
}

type region struct {
	name string
	data []byte
}

func (p *Packer) findImages(ctx context.Context, base string, out chan<- string) error {
	defer close(out)
	return filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
		if info.Name()[0] == '.' {
			if info.Mode().IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() || strings.ToLower(filepath.Ext(file)) != imageExt {
			return nil
		}

		select {
		case out <- file:
		case <-ctx.Done():
			return errCancelled
		}

		return nil
	})
}

func (p *Packer) encodeImage(file string, l texture.Layout) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	b := new(bytes.Buffer)
	if err := texture.Encode(b, m, l); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return b.Bytes(), nil
}

func (p *Packer) encodeImages(ctx context.Context, in <-chan string, out chan<- region) error {
	for file := range in {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

		l, ok := p.layout(name)
		if !ok {
			p.logger.Printf("No region named \"%s\", skipping \"%s\"\n", name, file)
			continue
		}

		data, err := p.encodeImage(file, l)
		if err != nil {
			return err
		}
		p.logger.Printf("Encoded \"%s\" as %s %s %dx%d\n", file, l.Format, l.Size, l.Width, l.Height)

		select {
		case out <- region{name, data}:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

func collect(in <-chan region, bank *Bank) error {
	for r := range in {
		if err := bank.Set(r.name, r.data); err != nil {
			return err
		}
	}
	return nil
}

// pipeline runs each stage in its own goroutine. The first stage to fail
// cancels the rest and its error is the one reported by wait.
type pipeline struct {
	wg     sync.WaitGroup
	cancel context.CancelFunc
	once   sync.Once
	err    error
}

func newPipeline(ctx context.Context) (*pipeline, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	return &pipeline{cancel: cancel}, ctx
}

func (pl *pipeline) stage(fn func() error) {
	pl.wg.Add(1)
	go func() {
		defer pl.wg.Done()
		if err := fn(); err != nil {
			pl.once.Do(func() {
				pl.err = err
				pl.cancel()
			})
		}
	}()
}

func (pl *pipeline) wait() error {
	pl.wg.Wait()
	pl.cancel()
	return pl.err
}

// Pack walks path and encodes every PNG image whose name has a layout into a
// new Bank.
func (p *Packer) Pack(path string) (*Bank, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	pl, ctx := newPipeline(context.Background())

	files := make(chan string)
	pl.stage(func() error {
		return p.findImages(ctx, dir, files)
	})

	regions := make(chan region)
	var encoders sync.WaitGroup
	encoders.Add(workers)
	for i := 0; i < workers; i++ {
		pl.stage(func() error {
			defer encoders.Done()
			return p.encodeImages(ctx, files, regions)
		})
	}
	go func() {
		encoders.Wait()
		close(regions)
	}()

	bank := New()
	pl.stage(func() error {
		return collect(regions, bank)
	})

	if err := pl.wait(); err != nil {
		return nil, err
	}

	return bank, nil
}

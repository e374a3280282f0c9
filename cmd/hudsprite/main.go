package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodgit/hudsprite"
	"github.com/bodgit/hudsprite/asset"
	"github.com/bodgit/hudsprite/gbi"
	"github.com/bodgit/hudsprite/texture"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/draw"
)

const (
	defaultBank = "hud" + asset.Extension

	// Where the bank is assumed to be loaded when encoding addresses
	defaultBase = 0x80400000
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// Read the bank and initialise a registry from it
func initRegistry(c *cli.Context) (*hudsprite.Registry, error) {
	b, err := ioutil.ReadFile(c.String("bank"))
	if err != nil {
		return nil, err
	}

	bank := asset.New()
	if err := bank.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	r := hudsprite.New(newLogger(c))
	if err := r.Init(hudsprite.Config{Widescreen: c.Bool("widescreen")}, bank, hudsprite.DefaultHeap); err != nil {
		return nil, err
	}

	return r, nil
}

func lookup(r *hudsprite.Registry, name string) (*hudsprite.Descriptor, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no sprite named \"%s\"", name)
	}
	return d, nil
}

func intArgs(c *cli.Context, n int) ([]int, error) {
	v := make([]int, n)
	for i := range v {
		var err error
		if v[i], err = strconv.Atoi(c.Args().Get(i + 1)); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func printWords(words []gbi.Gfx) {
	for _, w := range words {
		fmt.Println(w)
	}
}

func pack(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	r := hudsprite.New(nil)
	bank, err := asset.NewPacker(r.AssetLayout, newLogger(c)).Pack(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	b, err := bank.MarshalBinary()
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := ioutil.WriteFile(c.String("bank"), b, 0644); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func info(c *cli.Context) error {
	r, err := initRegistry(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	for _, name := range r.Names() {
		d, _ := r.Lookup(name)
		fmt.Printf("%-24s %-8s %-4s %-3s %3dx%-3d x%-3d %s\n",
			d.Name, r.Source(name), d.Format, d.Size,
			d.TileWidth, d.TileHeight, d.TileCount,
			humanize.IBytes(uint64(d.BytesTotal())))
	}

	return nil
}

func drawSprite(c *cli.Context) error {
	if c.NArg() < 6 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	r, err := initRegistry(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	d, err := lookup(r, c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	v, err := intArgs(c, 5)
	if err != nil {
		return cli.Exit(err, 1)
	}
	tile, left, top, width, height := v[0], v[1], v[2], v[3], v[4]

	dl := gbi.NewDisplayList(c.Int("capacity"))
	hudsprite.Load(dl, d, tile, 1)
	// The single loaded tile is always at index zero
	hudsprite.DrawCropped(dl, d, 0, left, top, width, height, hudsprite.CropY(c.Int("crop-top"), c.Int("crop-bottom")))

	layout := gbi.NewLayout(defaultBase)
	words := dl.Encode(layout.Address)

	if output := c.String("output"); output != "" {
		if err := ioutil.WriteFile(output, gbi.Marshal(words), 0644); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	}

	printWords(words)

	return nil
}

func setup(c *cli.Context) error {
	r, err := initRegistry(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	printWords(gbi.Encode(r.Setup(), nil))

	return nil
}

func preview(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	r, err := initRegistry(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	d, err := lookup(r, c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	m, err := texture.Decode(bytes.NewReader(d.Buf), d.Layout())
	if err != nil {
		return cli.Exit(err, 1)
	}

	scale := c.Int("scale")
	if scale < 1 {
		scale = 1
	}
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)

	f, err := os.Create(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "hudsprite"
	app.Usage = "HUD sprite atlas and display list utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "bank",
			EnvVars: []string{"HUDSPRITE_BANK"},
			Value:   filepath.Join(cwd, defaultBank),
			Usage:   "path to asset bank",
		},
		&cli.BoolFlag{
			Name:    "widescreen",
			EnvVars: []string{"HUDSPRITE_WIDESCREEN"},
			Usage:   "widen the scissor for 16:9 displays",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "pack",
			Usage:     "Encode a directory of PNG images into an asset bank",
			ArgsUsage: "DIRECTORY",
			Action:    pack,
		},
		{
			Name:   "info",
			Usage:  "List every sprite and its buffer",
			Action: info,
		},
		{
			Name:      "draw",
			Usage:     "Emit the commands loading and drawing one tile",
			ArgsUsage: "SPRITE TILE LEFT TOP WIDTH HEIGHT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "crop-top",
					Usage: "rows to remove from the top of the tile",
				},
				&cli.IntFlag{
					Name:  "crop-bottom",
					Usage: "rows to remove from the bottom of the tile",
				},
				&cli.IntFlag{
					Name:  "capacity",
					Value: 64,
					Usage: "display list capacity",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write binary words to `FILE` instead of printing them",
				},
			},
			Action: drawSprite,
		},
		{
			Name:   "setup",
			Usage:  "Print the render state setup list",
			Action: setup,
		},
		{
			Name:      "preview",
			Usage:     "Write a sprite atlas as a PNG image",
			ArgsUsage: "SPRITE FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "integer scale factor",
				},
			},
			Action: preview,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

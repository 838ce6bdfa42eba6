package pipeline

import (
	"fmt"

	"github.com/ironsheep/channel-isolate/internal/imaging"
)

// Options controls one load → isolate → save run.
type Options struct {
	Input   string // path of the image to read
	Output  string // path to write; the extension selects the format
	Channel string // "red", "green" or "blue", any case; empty means red
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Input   *imaging.ImageInfo
	Output  string
	Channel imaging.Channel
	Width   int
	Height  int
	Stats   imaging.Stats
}

// Run executes the full pipeline: parse channel → decode → isolate → encode.
//
// The channel is validated before the input is opened, so an invalid selector
// never produces an output file. Any failure aborts the run and nothing is
// written to opts.Output.
func Run(opts Options) (*Result, error) {
	name := opts.Channel
	if name == "" {
		name = imaging.DefaultChannel.String()
	}
	ch, err := imaging.ParseChannel(name)
	if err != nil {
		return nil, err
	}

	// 1. Decode
	img, err := imaging.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	info, err := imaging.Inspect(opts.Input, img)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Isolate on an opaque RGB copy
	raster := imaging.Flatten(img)
	stats, err := imaging.IsolateInPlace(raster, ch)
	if err != nil {
		return nil, err
	}

	// 3. Encode
	if err := imaging.Save(raster, opts.Output); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Input:   info,
		Output:  opts.Output,
		Channel: ch,
		Width:   raster.Bounds().Dx(),
		Height:  raster.Bounds().Dy(),
		Stats:   stats,
	}, nil
}

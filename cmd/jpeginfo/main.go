// Command jpeginfo decodes a JPEG file's marker-segment header and prints a
// structural summary. It is a thin demonstration wrapper around the jpeg
// package; it holds no decoding logic of its own.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/emdodo/gojpeg"
)

func main() {
	verbose := flag.BoolP("verbose", "v", false, "log markers as they are parsed")
	veryVerbose := flag.Bool("vv", false, "log markers and segment contents")
	markers := flag.Bool("markers", false, "log each dispatched marker")
	content := flag.Bool("content", false, "log segment contents (APP0, DQT, DHT, SOF0, SOS)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: jpeginfo [flags] <file.jpg>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "jpeginfo:", err)
		os.Exit(1)
	}

	level := zerolog.Disabled
	if *verbose || *veryVerbose || *markers || *content {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	control := &jpeg.Control{
		Markers: *markers || *verbose || *veryVerbose,
		Content: *content || *veryVerbose,
		Log:     &logger,
	}

	h, err := jpeg.Decode(context.Background(), data, control)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jpeginfo:", err)
		os.Exit(1)
	}

	fmt.Printf("dimensions: %dx%d, precision: %d\n", h.Width, h.Height, h.Precision)
	fmt.Printf("MCU grid: %dx%d (%d total)\n", h.MCUWidth, h.MCUHeight, len(h.MCUs))
	fmt.Printf("restart interval: %d\n", h.RestartInterval)
	for i := range h.Components {
		c := &h.Components[i]
		if !c.Used() {
			continue
		}
		fmt.Printf("component %d: sampling %dx%d, qtable %d, dc %d, ac %d\n",
			c.ID(), c.HFactor(), c.VFactor(), c.QTableSelector(), c.DCHuffmanSelector(), c.ACHuffmanSelector())
	}
	if h.JFIF != nil {
		fmt.Printf("JFIF %d.%02d, density %d x %d\n", h.JFIF.Major, h.JFIF.Minor, h.JFIF.XDensity, h.JFIF.YDensity)
	}
}

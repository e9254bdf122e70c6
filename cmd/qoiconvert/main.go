// Command qoiconvert converts images between QOI, PNG, and BMP by
// extension, exercising the qoi package's image.Image adapters alongside
// the standard image/png codec and golang.org/x/image/bmp.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/ausocean/utils/logging"

	"github.com/kriticalflare/qoicodec"
)

// cliLogger adapts the ausocean logging.Logger interface to the standard
// log package, printing structured key/value pairs the way ausocean's own
// callers pass them (message, then alternating key, value).
type cliLogger struct {
	verbose bool
}

func (l cliLogger) Log(level int8, msg string, args ...interface{}) {
	log.Print(msg, formatArgs(args))
}
func (l cliLogger) SetLevel(int8) {}
func (l cliLogger) Debug(msg string, args ...interface{}) {
	if l.verbose {
		log.Print("debug: ", msg, formatArgs(args))
	}
}
func (l cliLogger) Info(msg string, args ...interface{}) {
	log.Print("info: ", msg, formatArgs(args))
}
func (l cliLogger) Warning(msg string, args ...interface{}) {
	log.Print("warning: ", msg, formatArgs(args))
}
func (l cliLogger) Error(msg string, args ...interface{}) {
	log.Print("error: ", msg, formatArgs(args))
}
func (l cliLogger) Fatal(msg string, args ...interface{}) {
	log.Fatal("fatal: ", msg, formatArgs(args))
}

func formatArgs(args []interface{}) string {
	var b strings.Builder
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	return b.String()
}

func main() {
	in := flag.String("in", "", "input image path (.qoi, .png, or .bmp)")
	out := flag.String("out", "", "output image path (.qoi, .png, or .bmp)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: qoiconvert -in src -out dst")
		os.Exit(2)
	}

	logger := cliLogger{verbose: *verbose}

	img, err := decodeFile(*in)
	if err != nil {
		log.Fatalf("failed to decode %s: %v", *in, err)
	}
	if err := encodeFile(*out, img, logger); err != nil {
		log.Fatalf("failed to encode %s: %v", *out, err)
	}
	logger.Info("converted image", "from", *in, "to", *out)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".qoi":
		return qoi.ImageDecode(f)
	case ".png":
		return png.Decode(f)
	case ".bmp":
		return bmp.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", path)
	}
}

func encodeFile(path string, img image.Image, logger logging.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".qoi":
		return qoi.ImageEncode(f, img, qoi.Options{Logger: logger})
	case ".png":
		return png.Encode(f, img)
	case ".bmp":
		return bmp.Encode(f, img)
	default:
		return fmt.Errorf("unsupported output format: %s", path)
	}
}

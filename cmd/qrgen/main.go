// Copyright 2011 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qrgen encodes a string as a QR code and writes it as PNG,
// WebP or an ASCII grid.
package main

import (
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	qrcode "github.com/hassanbassam2005/QRCODE"
	"github.com/hassanbassam2005/QRCODE/render"
)

var g = struct {
	level  string // QR error correction level
	scale  int    // pixels per module
	border int    // quiet zone width in modules
	mask   int    // data mask, -1 for automatic
	format string // output format
	fn     string // output filename, "-" for stdout
}{
	level:  "M",
	scale:  8,
	border: 4,
	mask:   -1,
	fn:     "-",
}

func parseFlags() {
	getopt.FlagLong(&g.level, "level", 'l', "error correction level, one of L, M, Q, H")
	getopt.FlagLong(&g.scale, "scale", 's', "pixels per module")
	getopt.FlagLong(&g.border, "border", 'm', "quiet zone width in modules")
	getopt.FlagLong(&g.mask, "mask", 'k', "data mask 0-7, or -1 for automatic")
	getopt.FlagLong(&g.format, "type", 't', "output format: png, webp or ascii")
	getopt.FlagLong(&g.fn, "output", 'o', `output file, or "-" for stdout`)
	getopt.Parse()

	if g.format == "" {
		if g.fn == "-" && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			g.format = "ascii"
		} else {
			g.format = "png"
		}
	}
}

func level() qrcode.Level {
	switch strings.ToUpper(g.level) {
	case "L":
		return qrcode.L
	case "M":
		return qrcode.M
	case "Q":
		return qrcode.Q
	case "H":
		return qrcode.H
	default:
		log.Fatalln("qrgen: invalid level:", g.level)
		panic("unreachable")
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()
	args := getopt.Args()
	if len(args) != 1 {
		log.Fatalln("qrgen: expected exactly one argument to encode")
	}

	segs, err := qrcode.SegmentsForText(args[0])
	if err != nil {
		log.Fatalln("qrgen:", err)
	}
	code, err := qrcode.EncodeSegments(segs, level(), qrcode.MinVersion, qrcode.MaxVersion, g.mask, true)
	if err != nil {
		log.Fatalln("qrgen:", err)
	}

	w := os.Stdout
	if g.fn != "-" {
		f, err := os.Create(g.fn)
		if err != nil {
			log.Fatalln("qrgen:", err)
		}
		defer f.Close()
		w = f
	}

	opts := render.Options{Scale: g.scale, Border: g.border}
	switch g.format {
	case "png":
		err = render.PNG(w, code, opts)
	case "webp":
		err = render.WebP(w, code, opts)
	case "ascii":
		err = render.ASCII(w, code, g.border)
	default:
		log.Fatalln("qrgen: unknown output format:", g.format)
	}
	if err != nil {
		log.Fatalln("qrgen:", err)
	}
}

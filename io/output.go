package io

import (
	"bufio"
	"fmt"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phil-mansfield/ipfkey"
	"github.com/phil-mansfield/ipfkey/ipf"
)

const pointHeader = "# %12s %12s %8s %8s %8s %8s\n"

func writeRow(w *bufio.Writer, x, y float64, c colorful.Color) error {
	_, err := fmt.Fprintf(
		w, "  %12.8f %12.8f %8.6f %8.6f %8.6f %8s\n",
		x, y, c.R, c.G, c.B, c.Hex(),
	)
	return err
}

// WritePoints writes one line per point: its position on the stereographic
// disk followed by its colour as floats and as a hex string.
func WritePoints(wr io.Writer, pts []ipfkey.Point) error {
	w := bufio.NewWriter(wr)
	if _, err := fmt.Fprintf(w, pointHeader, "x", "y", "r", "g", "b", "hex"); err != nil {
		return err
	}
	for _, p := range pts {
		if err := writeRow(w, p.X, p.Y, p.Color); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteLegend writes a legend in the same format as WritePoints.
func WriteLegend(wr io.Writer, pts []ipf.LegendPoint) error {
	w := bufio.NewWriter(wr)
	if _, err := fmt.Fprintf(w, pointHeader, "x", "y", "r", "g", "b", "hex"); err != nil {
		return err
	}
	for _, p := range pts {
		if err := writeRow(w, p.X, p.Y, p.Color); err != nil {
			return err
		}
	}
	return w.Flush()
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/phil-mansfield/ipfkey"
	"github.com/phil-mansfield/ipfkey/io"
)

func main() {
	var (
		viewer, exampleConfig string
		list                  bool
	)

	flag.StringVar(
		&viewer, "Viewer", "",
		"Configuration file for [Viewer] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Viewer'.",
	)
	flag.BoolVar(
		&list, "ListSymmetries", false,
		"Prints the supported symmetry labels to stdout.",
	)

	flag.Parse()

	modeName, err := getModeName(map[string]bool{
		"Viewer":         viewer != "",
		"ExampleConfig":  exampleConfig != "",
		"ListSymmetries": list,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Viewer":
		con, err := io.ReadViewerConfig(viewer)
		if err != nil {
			log.Fatal(err.Error())
		}

		if con.ValidLogFile() {
			f, err := os.Create(con.LogFile)
			if err != nil {
				log.Fatal(err.Error())
			}
			defer f.Close()
			log.SetOutput(f)
		}

		if err := viewerMain(con); err != nil {
			log.Fatal(err.Error())
		}
	case "ExampleConfig":
		switch exampleConfig {
		case "Viewer":
			fmt.Println(io.ExampleViewerFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Viewer'.",
			)
		}
	case "ListSymmetries":
		for _, l := range ipfkey.ListSymmetries() {
			fmt.Printf("%-4s %s\n", l, l.Description())
		}
	default:
		panic("Impossible")
	}
}

func getModeName(set map[string]bool) (string, error) {
	setNames := []string{}

	for name, ok := range set {
		if ok {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but ipfkey "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func viewerMain(con *io.ViewerConfig) error {
	l := con.Label()
	workers := con.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.Printf("%s mode for %s (%s)", con.ParsedMode(), l, l.Description())
	t0 := time.Now()

	switch con.ParsedMode() {
	case io.Legend:
		pts, err := ipfkey.ColorKeyLegend(l, con.LegendResolution)
		if err != nil {
			return err
		}
		log.Printf("Sampled %d legend points in %s.", len(pts), time.Since(t0))
		return io.WriteLegend(os.Stdout, pts)

	case io.Orientation:
		pts, err := ipfkey.OrientationPoints(l, con.Phi1, con.Phi, con.Phi2)
		if err != nil {
			return err
		}
		for i, axis := range []string{"X", "Y", "Z"} {
			log.Printf(
				"Sample %s at (%.4f, %.4f), colour %s", axis,
				pts[i].X, pts[i].Y, pts[i].Color.Hex(),
			)
		}
		return io.WritePoints(os.Stdout, pts)

	case io.Sample:
		pts, err := ipfkey.SampleColorsWorkers(l, con.Points, con.Seed, workers)
		if err != nil {
			return err
		}
		log.Printf(
			"Coloured %d orientations with %d workers in %s.",
			len(pts), workers, time.Since(t0),
		)
		return io.WritePoints(os.Stdout, pts)
	}

	return fmt.Errorf("Unsupported mode %s for %s.", con.ParsedMode(), l)
}

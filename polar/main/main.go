package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/aerotab"
	"github.com/phil-mansfield/aerotab/io"
	"github.com/phil-mansfield/aerotab/plot"
	"github.com/phil-mansfield/aerotab/polar"
)

const usage = `Usage: $ %s [flags] namespace polar_file [polar_file ...]

Prints the lift, drag, pitching moment and center of pressure columns of the
given polar files as four C++ fields declared inside namespace. Each file
holds the polar for a single Reynolds number; the order of the files doesn't
matter. Flags must come before the positional arguments.

`

func main() {
	var (
		configFile, plotFile, plotQuantity, dumpFile string
		exampleConfig, verbose bool
	)

	flag.StringVar(
		&configFile, "Config", "",
		"Optional configuration file with a [Polar] section.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout and exits.",
	)
	flag.StringVar(
		&plotFile, "Plot", "",
		"Saves a figure of one quantity against angle of attack to this "+
			"file. Requires python and matplotlib.",
	)
	flag.StringVar(
		&plotQuantity, "PlotQuantity", "Lift",
		"Quantity drawn by -Plot. Accepted arguments are 'Lift', 'Drag', "+
			"'PitchingMoment', and 'CenterOfPressureOffset'.",
	)
	flag.StringVar(
		&dumpFile, "Dump", "",
		"Writes the parsed polars to this file as YAML.",
	)
	flag.BoolVar(
		&verbose, "Verbose", false, "Logs progress information to stderr.",
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExamplePolarFile)
		return
	}

	args := flag.Args()
	if len(args) < 2 {
		log.Fatalf(
			"Usage: $ %s [flags] namespace polar_file [polar_file ...]",
			os.Args[0],
		)
	}
	ns, fnames := args[0], args[1:]

	q, ok := polar.QuantityFromString(plotQuantity)
	if !ok {
		log.Fatalf("'%s' is not a recognized quantity.", plotQuantity)
	}

	con, err := io.ReadPolarConfig(configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	logger := aerotab.NewLogger(verbose)

	c, err := polar.NewParser(logger).ParseFiles(fnames)
	if err != nil {
		log.Fatal(err.Error())
	}
	logger.WithFields(l.IntField("tables", len(c))).Debug("sorted polars")

	// Nothing goes to stdout unless all four fields were generated.
	buf := &bytes.Buffer{}
	if err := polar.Emit(buf, c, ns, con); err != nil {
		log.Fatal(err.Error())
	}

	if dumpFile != "" {
		if err := dump(dumpFile, c); err != nil {
			log.Fatal(err.Error())
		}
	}

	if plotFile != "" {
		if err := plot.Polars(plotFile, c, q); err != nil {
			log.Fatal(err.Error())
		}
		if err := plot.Execute(); err != nil {
			log.Fatal(err.Error())
		}
	}

	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		log.Fatal(err.Error())
	}
}

func dump(fname string, c polar.Collection) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	if err := polar.WriteYAML(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

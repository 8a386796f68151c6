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
	"github.com/phil-mansfield/aerotab/spline"
)

const usage = `Usage: $ %s [flags] namespace airfoil_file

Prints the airfoil coordinates in airfoil_file as a C++ constant declared
inside namespace. Flags must come before the positional arguments.

`

func main() {
	var (
		configFile, plotFile string
		exampleConfig, verbose bool
	)

	flag.StringVar(
		&configFile, "Config", "",
		"Optional configuration file with a [Spline] section.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout and exits.",
	)
	flag.StringVar(
		&plotFile, "Plot", "",
		"Saves a figure of the airfoil outline to this file. Requires "+
			"python and matplotlib.",
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
		fmt.Println(io.ExampleSplineFile)
		return
	}

	args := flag.Args()
	if len(args) != 2 {
		log.Fatalf(
			"Usage: $ %s [flags] namespace airfoil_file", os.Args[0],
		)
	}
	ns, fname := args[0], args[1]

	con, err := io.ReadSplineConfig(configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	logger := aerotab.NewLogger(verbose).WithFields(
		l.StringField("file", fname),
	)

	sp, err := readSpline(fname, con)
	if err != nil {
		log.Fatal(err.Error())
	}
	logger.WithFields(
		l.StringField("name", sp.Name), l.IntField("points", sp.Len()),
	).Debug("read airfoil")

	if con.ResamplePoints > 0 {
		sp, err = spline.Resample(sp, con.ResamplePoints)
		if err != nil {
			log.Fatal(err.Error())
		}
		logger.WithFields(l.IntField("points", sp.Len())).Debug("resampled")
	}

	// Nothing goes to stdout unless the whole constant was generated.
	buf := &bytes.Buffer{}
	if err := spline.Emit(buf, sp, ns, con); err != nil {
		log.Fatal(err.Error())
	}

	if plotFile != "" {
		if err := plot.Spline(plotFile, sp); err != nil {
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

func readSpline(fname string, con *io.SplineConfig) (*spline.Spline, error) {
	switch con.Format() {
	case io.TableFormat:
		return spline.ReadTableFile(fname, con.XColumn, con.YColumn)
	default:
		return spline.ReadFile(fname)
	}
}

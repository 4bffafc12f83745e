package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/crillab/bipenum/bip"
	"github.com/crillab/bipenum/logger"
	"github.com/rs/zerolog"
)

// Verbosity levels selectable with -v.
const (
	verbQuiet   = iota // no output
	verbNormal         // normal output
	verbVerbose        // print every feasible solution
	verbChatter        // also print the parsed problem
	verbDebug          // including information only useful for debugging
)

const version = "1.0.0"

func main() {
	var (
		verb    int
		showVer bool
	)
	flag.IntVar(&verb, "v", verbNormal, "verbosity level: 0 = quiet, 1 = normal, up to 4 = debug")
	flag.BoolVar(&showVer, "V", false, "print program version")
	flag.Parse()
	if showVer {
		fmt.Println(version)
		return
	}
	if verb < verbQuiet || verb > verbDebug || len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] file.dat\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	switch {
	case verb == verbQuiet:
		logger.Disable()
	case verb >= verbDebug:
		logger.SetLevel(zerolog.DebugLevel)
	}
	log := logger.Logger()

	path := flag.Args()[0]
	log.Info().Str("file", path).Msg("reading problem")
	pb, err := bip.LoadBIP(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load problem: %v\n", err)
		os.Exit(1)
	}
	log.Info().Int("rows", pb.Rows()).Int("cols", pb.Cols()).Msg("problem read")
	if err := pb.Preprocess(); err != nil {
		fmt.Fprintf(os.Stderr, "could not preprocess problem: %v\n", err)
		os.Exit(1)
	}
	if verb >= verbChatter {
		fmt.Print(pb)
	}
	var report bip.ReportFunc
	if verb >= verbVerbose {
		report = printSolution
	}
	start := time.Now()
	solutions := pb.Enumerate(report)
	elapsed := time.Since(start).Seconds()
	checked := uint64(1) << uint(pb.Cols())
	if verb >= verbNormal {
		fmt.Printf("Checked %d vectors in %.3f s = %.3f kvecs/s\n",
			checked, elapsed, float64(checked)/elapsed/1000.0)
		fmt.Printf("Found %d feasible solutions\n", solutions)
	}
}

// printSolution writes one feasible solution as a hex value followed
// by the individual variable assignments, lowest bit first.
func printSolution(pb *bip.Problem, x uint32) {
	fmt.Printf("%8x: ", x)
	for col, bit := 0, uint32(1); col < pb.Cols(); col, bit = col+1, bit<<1 {
		if x&bit != 0 {
			fmt.Print("1 ")
		} else {
			fmt.Print("0 ")
		}
	}
	fmt.Println()
}

package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
)

// FlagVerbose gates the Verbosef diagnostics. Commands register it
// with the -verbose flag.
var FlagVerbose = false

func init() {
	log.SetFlags(0)
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

// FlagParse installs a usage function describing the positional
// arguments, registers the -verbose flag and parses the command line.
func FlagParse(positional string, desc string) {
	flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
		"When set, extra diagnostics are printed.")

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()
}

// Command fidltransform drives the transcode engine from the command line:
// it runs the named conformance corpus and reports mismatches, or applies a
// single directional transform to caller-supplied bytes using one of the
// corpus scenarios' type descriptors.
package main

import (
	"os"

	"go.uber.org/zap"
)

// log is package-level the way a small cobra command's ambient logger
// usually is: built once in main after flags are parsed, read by every
// subcommand's RunE.
var log *zap.Logger

func main() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.Error("fidltransform failed", zap.Error(err))
		} else {
			os.Stderr.WriteString(err.Error() + "\n")
		}
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

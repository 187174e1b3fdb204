package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tengyifei/llcpptransformer/conformance"
	"github.com/tengyifei/llcpptransformer/schema"
	"github.com/tengyifei/llcpptransformer/transcode"
)

var (
	transformScenario  string
	transformDirection string
	transformIn        string
	transformOut       string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transcode a byte buffer using one corpus scenario's type descriptor",
	Long: `transform reads --in, transcodes it according to --direction using the
struct descriptor named by --scenario, and writes the result to --out (or
stdout when --out is unset). This is meant for poking at one scenario's
descriptors against hand-edited input, not for arbitrary schemas: the only
type descriptors this binary knows about are the ones compiled into the
conformance corpus.`,
	RunE: runTransform,
}

// registerTransformFlags binds transform's flags onto flags, rather than
// inlining StringVar calls in init, so the registration is reusable and
// testable against a bare *pflag.FlagSet.
func registerTransformFlags(flags *pflag.FlagSet) {
	flags.StringVar(&transformScenario, "scenario", "", "corpus scenario whose type descriptor to use (see fidltransform conformance --help for names)")
	flags.StringVar(&transformDirection, "direction", "", "old-to-v1 or v1-to-old")
	flags.StringVar(&transformIn, "in", "", "input file (required)")
	flags.StringVar(&transformOut, "out", "", "output file (stdout if unset)")
}

func init() {
	registerTransformFlags(transformCmd.Flags())
	transformCmd.MarkFlagRequired("scenario")
	transformCmd.MarkFlagRequired("direction")
	transformCmd.MarkFlagRequired("in")
}

func runTransform(cmd *cobra.Command, args []string) error {
	var scenario *conformance.Scenario
	for i := range conformance.All {
		if conformance.All[i].Name == transformScenario {
			scenario = &conformance.All[i]
			break
		}
	}
	if scenario == nil {
		return fmt.Errorf("no such scenario %q", transformScenario)
	}

	var direction transcode.Direction
	var topType *schema.Type
	var dstLen int
	switch transformDirection {
	case "old-to-v1":
		direction = transcode.DirectionOldToV1
		topType = scenario.OldType
		dstLen = len(scenario.V1Bytes)
	case "v1-to-old":
		direction = transcode.DirectionV1ToOld
		topType = scenario.V1Type
		dstLen = len(scenario.OldBytes)
	default:
		return fmt.Errorf("unknown direction %q, want old-to-v1 or v1-to-old", transformDirection)
	}

	src, err := os.ReadFile(transformIn)
	if err != nil {
		return fmt.Errorf("reading %s: %w", transformIn, err)
	}

	dst := make([]byte, dstLen)
	n, err := transcode.Transform(direction, topType, src, dst)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	dst = dst[:n]

	log.Info("transform succeeded",
		zap.String("scenario", transformScenario),
		zap.Stringer("direction", direction),
		zap.Int("input_bytes", len(src)),
		zap.Uint32("output_bytes", n))

	if transformOut == "" {
		_, err = os.Stdout.Write(dst)
		return err
	}
	return os.WriteFile(transformOut, dst, 0o644)
}

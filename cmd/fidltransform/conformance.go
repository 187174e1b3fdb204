package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tengyifei/llcpptransformer/conformance"
)

var conformanceCmd = &cobra.Command{
	Use:   "conformance [name...]",
	Short: "Round-trip the named byte-level corpus and report mismatches",
	Long: `conformance runs every scenario in the corpus (or only the ones named
as arguments) through both transform directions and diffs the result
against the scenario's recorded bytes. A non-empty mismatch exits non-zero.`,
	RunE: runConformance,
}

func runConformance(cmd *cobra.Command, args []string) error {
	scenarios := conformance.All
	if len(args) > 0 {
		wanted := make(map[string]bool, len(args))
		for _, a := range args {
			wanted[a] = true
		}
		scenarios = nil
		for _, s := range conformance.All {
			if wanted[s.Name] {
				scenarios = append(scenarios, s)
				delete(wanted, s.Name)
			}
		}
		for name := range wanted {
			return fmt.Errorf("no such scenario %q", name)
		}
	}

	failed := 0
	for _, s := range scenarios {
		oldResult, v1Result, err := s.Run()
		if err != nil {
			failed++
			log.Error("scenario errored", zap.String("scenario", s.Name), zap.Error(err))
			continue
		}
		ok := bytesEqual(oldResult, s.OldBytes) && bytesEqual(v1Result, s.V1Bytes)
		if !ok {
			failed++
			log.Error("scenario mismatch", zap.String("scenario", s.Name))
			continue
		}
		log.Info("scenario passed", zap.String("scenario", s.Name))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	fmt.Printf("%d scenarios passed\n", len(scenarios))
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

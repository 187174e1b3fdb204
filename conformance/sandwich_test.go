package conformance

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestScenariosRoundTrip(t *testing.T) {
	for _, s := range All {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			oldResult, v1Result, err := s.Run()
			require.NoError(t, err)

			if diff := cmp.Diff(s.OldBytes, oldResult); diff != "" {
				t.Errorf("v1->old mismatch for %s (-want +got):\n%s", s.Name, diff)
			}
			if diff := cmp.Diff(s.V1Bytes, v1Result); diff != "" {
				t.Errorf("old->v1 mismatch for %s (-want +got):\n%s", s.Name, diff)
			}
		})
	}
}

func TestSandwich1EnvelopeFields(t *testing.T) {
	s := sandwich1()
	_, v1Result, err := s.Run()
	require.NoError(t, err)
	require.Equal(t, s.V1Bytes, v1Result)

	// Spot-check the envelope header fields independent of the full-byte
	// comparison above, since these are the exact values the original
	// Sandwich1 test case asserts.
	require.Equal(t, uint32(0x7fc2f0db), ru32(v1Result, 8), "ordinal")
	require.Equal(t, uint32(8), ru32(v1Result, 16), "num_bytes")
}

func TestSandwich5EnvelopeBackpatching(t *testing.T) {
	s := sandwich5Case2()
	_, v1Result, err := s.Run()
	require.NoError(t, err)

	require.Equal(t, uint32(40), ru32(v1Result, 16), "outer num_bytes must cover the inner xunion's full footprint")
	require.Equal(t, uint32(16), ru32(v1Result, 48), "inner num_bytes")
}

func TestSandwich6Case2EnvelopeCoversElements(t *testing.T) {
	s := sandwich6Case2()
	_, v1Result, err := s.Run()
	require.NoError(t, err)

	require.Equal(t, uint32(0x28), ru32(v1Result, 16), "num_bytes must cover the header plus the aligned element region")
}

func TestSandwich6Case1AbsentVectorEnvelopeIsHeaderOnly(t *testing.T) {
	s := sandwich6Case1AbsentVector()
	_, v1Result, err := s.Run()
	require.NoError(t, err)

	require.Equal(t, uint32(0x10), ru32(v1Result, 16), "num_bytes is the vector header alone when absent")
}

// TestSandwich6Case5CountsVectorHandles proves the handle-count fix end
// to end: a union variant whose payload is vector<handle>:3 must report
// num_handles 3 in its v1 envelope, not the 1-handle value a per-type
// static walk over the element type alone would have produced.
func TestSandwich6Case5CountsVectorHandles(t *testing.T) {
	s := sandwich6Case5()
	_, v1Result, err := s.Run()
	require.NoError(t, err)

	require.Equal(t, uint32(3), ru32(v1Result, 20), "num_handles must scale with the vector's actual length")
}

func ru32(b []byte, off int) uint32 {
	return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24
}

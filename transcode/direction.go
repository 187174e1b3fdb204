package transcode

// Direction selects which way a Transform call rewrites a message. It is
// backed by a 64-bit width, wider than the three values in use need, to
// keep its wire-facing counterpart (the CLI's --direction flag decoding)
// aligned with the original C ABI's 64-bit enum.
type Direction uint64

const (
	// DirectionNone leaves src untouched and reports zero bytes written,
	// used by callers that negotiated a transcode but found both ends
	// already speak the same layout.
	DirectionNone Direction = iota
	// DirectionV1ToOld rewrites a v1-layout message into the old layout.
	DirectionV1ToOld
	// DirectionOldToV1 rewrites an old-layout message into v1.
	DirectionOldToV1
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionV1ToOld:
		return "v1-to-old"
	case DirectionOldToV1:
		return "old-to-v1"
	default:
		return "unknown"
	}
}

package wiredump

import "github.com/danmuck/wirekit/internal/bidi"

// Default naming tables for the edgectl frame family. Deployments with
// their own schemas load custom tables at the edges and pass them in
// as a Naming.
var (
	TypeNames = bidi.MustNew(map[string]uint8{
		"u8":     TypeU8,
		"u16":    TypeU16,
		"u32":    TypeU32,
		"u64":    TypeU64,
		"bool":   TypeBool,
		"string": TypeString,
		"bytes":  TypeBytes,
	})

	MessageNames = bidi.MustNew(map[string]uint32{
		"issue":        1,
		"command":      2,
		"seed.execute": 3,
		"seed.result":  4,
		"event":        5,
		"report":       6,
		"error":        7,
	})

	FlagNames = bidi.MustNew(map[string]uint32{
		"has_auth":    FlagHasAuth,
		"is_response": FlagIsResponse,
		"is_error":    FlagIsError,
	})

	MagicNames = bidi.MustNew(map[string]uint32{
		"edgectl": 0xEDCE1001,
	})
)

// Naming resolves wire constants to display names during rendering.
type Naming struct {
	Messages *bidi.Map[uint32]
	Types    *bidi.Map[uint8]
	Flags    *bidi.Map[uint32]
	Magics   *bidi.Map[uint32]
}

// DefaultNaming returns the edgectl family tables.
func DefaultNaming() Naming {
	return Naming{
		Messages: MessageNames,
		Types:    TypeNames,
		Flags:    FlagNames,
		Magics:   MagicNames,
	}
}

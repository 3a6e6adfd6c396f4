package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/wirekit/internal/bidi"
	"github.com/danmuck/wirekit/internal/wiredump"
)

// namingFile mirrors the TOML layout for custom naming tables. Each
// section maps display names to wire values.
type namingFile struct {
	Messages map[string]uint32 `toml:"messages"`
	Types    map[string]uint8  `toml:"types"`
	Flags    map[string]uint32 `toml:"flags"`
	Magics   map[string]uint32 `toml:"magics"`
}

// loadNaming overlays naming tables from a TOML file onto the defaults.
// Only sections present in the file replace their table.
func loadNaming(path string) (wiredump.Naming, error) {
	naming := wiredump.DefaultNaming()

	var raw namingFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return wiredump.Naming{}, fmt.Errorf("load naming tables: %w", err)
	}

	if meta.IsDefined("messages") {
		if naming.Messages, err = bidi.New(raw.Messages); err != nil {
			return wiredump.Naming{}, fmt.Errorf("messages: %w", err)
		}
	}
	if meta.IsDefined("types") {
		if naming.Types, err = bidi.New(raw.Types); err != nil {
			return wiredump.Naming{}, fmt.Errorf("types: %w", err)
		}
	}
	if meta.IsDefined("flags") {
		if naming.Flags, err = bidi.New(raw.Flags); err != nil {
			return wiredump.Naming{}, fmt.Errorf("flags: %w", err)
		}
	}
	if meta.IsDefined("magics") {
		if naming.Magics, err = bidi.New(raw.Magics); err != nil {
			return wiredump.Naming{}, fmt.Errorf("magics: %w", err)
		}
	}
	return naming, nil
}

package sdl2

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is stripped from symbol names by Remap.
const Prefix = "SDL_"

type remapOptions struct {
	logger *log.Logger
}

// RemapOption configures Remap.
type RemapOption func(*remapOptions)

// WithLogger logs every renamed key at debug level.
func WithLogger(logger *log.Logger) RemapOption {
	return func(o *remapOptions) { o.logger = logger }
}

// Remap copies every symbol into out, stripping Prefix from names that
// carry it followed by at least one more character. Other names, including
// the bare prefix, are copied unchanged. Values are shared, not cloned.
//
// A nil out is replaced by a new map. Existing entries of out are kept
// unless a remapped name collides with them, in which case the symbol wins.
// The table is validated before out is touched, so on error out is
// unchanged.
func Remap(symbols *SymbolTable, out map[string]any, opts ...RemapOption) (map[string]any, error) {
	if symbols == nil {
		return out, ErrNilSymbols
	}
	for _, k := range symbols.Keys() {
		if k == "" {
			return out, ErrInvalidKey
		}
	}

	var o remapOptions
	for _, opt := range opts {
		opt(&o)
	}

	if out == nil {
		out = make(map[string]any, symbols.Len())
	}
	symbols.Range(func(key string, value any) bool {
		name := StripPrefix(key)
		if o.logger != nil && name != key {
			o.logger.Debug("remap", "from", key, "to", name)
		}
		out[name] = value
		return true
	})
	return out, nil
}

// StripPrefix returns key without Prefix when the remainder is non-empty,
// and key itself otherwise.
func StripPrefix(key string) string {
	if rest, ok := strings.CutPrefix(key, Prefix); ok && rest != "" {
		return rest
	}
	return key
}

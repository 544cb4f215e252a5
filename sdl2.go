// Package sdl2 exposes a prebuilt SDL2 shared library to Go code.
//
// The library is located through an ordered chain of providers, its
// functions and constants are collected into a flat SymbolTable keyed by
// their C names, and Remap turns that flat SDL_-prefixed surface into a
// namespace:
//
//	lib, err := sdl2.Load(ctx, sdl2.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	sdl, err := lib.SDL(nil)
//	if err != nil {
//		return err
//	}
//	initFn := sdl["Init"].(func(uint32) int32)
package sdl2

import (
	"github.com/agiangrant/sdl2/internal/provider"
	"github.com/agiangrant/sdl2/internal/symbols"
)

// SymbolTable is an insertion-ordered mapping of symbol names to values.
// This is a re-export of symbols.Table for consumer convenience.
type SymbolTable = symbols.Table

// LoadError lists every provider that failed to produce symbols.
// This is a re-export of provider.LoadError for consumer convenience.
type LoadError = provider.LoadError

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return symbols.New()
}

// RegisterLinked makes a symbol table compiled into the process available
// to the "linked" provider under name.
func RegisterLinked(name string, table *SymbolTable) {
	provider.RegisterLinked(name, table)
}

// UnregisterLinked removes a table added with RegisterLinked.
func UnregisterLinked(name string) {
	provider.UnregisterLinked(name)
}

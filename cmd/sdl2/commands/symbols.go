package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"

	"github.com/agiangrant/sdl2"
)

// Symbols implements the 'sdl2 symbols' command
func Symbols(args []string) error {
	fs := flag.NewFlagSet("symbols", flag.ExitOnError)
	lf := addLoadFlags(fs)
	raw := fs.Bool("raw", false, "Print C names instead of the namespaced names")
	fs.Parse(args)

	lib, err := lf.open()
	if err != nil {
		return err
	}
	defer sdl2.Close()

	if *raw {
		return writeRaw(os.Stdout, lib.Symbols())
	}
	ns, err := lib.SDL(nil)
	if err != nil {
		return err
	}
	return writeNamespace(os.Stdout, ns)
}

// writeRaw prints the table in load order.
func writeRaw(w io.Writer, table *sdl2.SymbolTable) error {
	var err error
	table.Range(func(name string, value any) bool {
		_, err = fmt.Fprintf(w, "%-40s %s\n", name, describe(value))
		return err == nil
	})
	return err
}

// writeNamespace prints the namespace sorted by name.
func writeNamespace(w io.Writer, ns map[string]any) error {
	names := make([]string, 0, len(ns))
	for name := range ns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%-40s %s\n", name, describe(ns[name])); err != nil {
			return err
		}
	}
	return nil
}

// describe renders a symbol value for listing: the Go type for functions
// and groups, the value itself for scalar constants.
func describe(v any) string {
	if v == nil {
		return "nil"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return fmt.Sprintf("%q", v)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%T", v)
	}
}

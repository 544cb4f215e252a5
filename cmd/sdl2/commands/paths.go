package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/sdl2/internal/ffi"
)

// candidate is one searched location and whether a file is there.
type candidate struct {
	Path   string
	Exists bool
}

// Paths implements the 'sdl2 paths' command
func Paths(args []string) error {
	flags := flag.NewFlagSet("paths", flag.ExitOnError)
	lf := addLoadFlags(flags)
	flags.Parse(args)

	cfg, err := lf.loadConfig()
	if err != nil {
		return err
	}

	names := cfg.Library.Names
	if len(names) == 0 {
		names = ffi.DefaultLibraryNames()
	}

	var paths []string
	if cfg.Library.Path != "" {
		paths = append(paths, cfg.Library.Path)
	}
	paths = append(paths, ffi.Candidates(names, cfg.Library.SearchDirs)...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := statPaths(ctx, paths)
	if err != nil {
		return err
	}
	return writeCandidates(os.Stdout, results)
}

// statPaths stats every path concurrently. Results keep the input order.
// A missing path is reported as absent; any other stat failure aborts.
func statPaths(ctx context.Context, paths []string) ([]candidate, error) {
	results := make([]candidate, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			exists, err := fileExists(path)
			if err != nil {
				return err
			}
			results[i] = candidate{Path: path, Exists: exists}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fileExists reports whether path names something other than a directory.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		// *fs.PathError already names the path
		return false, err
	}
	return !info.IsDir(), nil
}

func writeCandidates(w io.Writer, results []candidate) error {
	found := 0
	for _, r := range results {
		mark := " "
		if r.Exists {
			mark = "✓"
			found++
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, r.Path); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d of %d candidates present\n", found, len(results))
	return err
}

package component

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/output"
	"github.com/rcgen/cli/internal/templates"
)

// Emitter writes planned component files to disk.
type Emitter struct {
	Fs   afero.Fs
	Root string

	// Templates fills files from the template registry. When false every
	// file is created empty.
	Templates bool
}

// Emit creates <Root>/<name>/ for each name and writes every planned kind
// into it. Existing files are never overwritten. Writes run concurrently;
// the first failure cancels pending writes and is returned wrapped in
// errors.ErrWrite. Files already written are not removed.
//
// The returned paths are in name order, then plan order.
func (e *Emitter) Emit(ctx context.Context, plan Plan, names []string) ([]string, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	for _, name := range names {
		dir := filepath.Join(e.Root, name)
		if err := e.Fs.MkdirAll(dir, 0o755); err != nil {
			output.Error("creating component directory", "path", dir, "err", err)
			return nil, oerrors.NewWriteError(dir, err)
		}
	}

	stylesheet := plan.ImportedStylesheet()
	written := make([]string, len(names)*len(plan.Files))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		for j, kind := range plan.Files {
			idx := i*len(plan.Files) + j
			path := filepath.Join(e.Root, name, kind.FileName(name))

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				content := ""
				if e.Templates {
					content = templates.Resolve(kind, name, stylesheet)
				}

				if err := e.writeFile(path, content); err != nil {
					output.Error("writing file", "path", path, "err", err)
					return oerrors.NewWriteError(path, err)
				}

				output.ComponentLogger(name).Debug("file written", "path", path, "kind", kind)
				written[idx] = path
				return nil
			})
		}
	}

	err := g.Wait()
	return compact(written), err
}

// writeFile creates path exclusively and writes content to it.
func (e *Emitter) writeFile(path, content string) error {
	f, err := e.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// compact drops the slots of writes that did not complete.
func compact(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

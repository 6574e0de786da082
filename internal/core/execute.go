package core

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/argyle-sh/argyle/fsys"
)

// Result is the outcome of an Execute call: the handler's opaque return
// value plus any advisory warnings collected while tokenizing. Warnings
// are populated even when Execute also returns an error.
type Result struct {
	Value    any
	Warnings []*ParseError
}

// Execute parses args against cmd, resolves File and Folder arguments
// through fs, validates the result, and dispatches to the selected
// command's handler. args excludes the program name. The schema is shared
// read-only; all mutable state belongs to this call.
func Execute(ctx context.Context, cmd *Command, args []string, fs fsys.FS) (Result, error) {
	if err := cmd.Check(); err != nil {
		return Result{}, err
	}

	res, perr := resolve(cmd, args)
	result := Result{Warnings: res.warnings}

	if perr != nil {
		return result, perr
	}

	if perr := res.applyDefaults(); perr != nil {
		return result, perr
	}

	if perr := res.expandFlags(); perr != nil {
		return result, perr
	}

	rec, perr := coerce(res.cmd, res)
	if perr != nil {
		return result, perr
	}

	if err := resolvePaths(ctx, res.cmd, rec, fs); err != nil {
		return result, err
	}

	if err := checkConstraints(res.cmd, rec); err != nil {
		return result, err
	}

	if res.cmd.Handler == nil {
		return result, ErrNoHandler
	}

	out, err := res.cmd.Handler(ctx, rec)
	if err != nil {
		return result, err
	}

	result.Value = out

	return result, nil
}

// resolvePaths opens every unresolved File and Folder value concurrently.
// The first failure cancels the batch and is returned verbatim; the other
// outcomes are discarded. Each goroutine writes its own slot, and the
// record is only updated after the whole batch succeeds.
func resolvePaths(ctx context.Context, cmd *Command, rec *Record, fs fsys.FS) error {
	var pending []Param

	for _, p := range cmd.Args {
		if p.Arg.Type != TypeFile && p.Arg.Type != TypeFolder {
			continue
		}

		v, ok := rec.Get(p.Name)
		if !ok || v.Opened() {
			continue
		}

		pending = append(pending, p)
	}

	if len(pending) == 0 {
		return nil
	}

	if fs == nil {
		return ErrNoFilesystem
	}

	slots := make([]Value, len(pending))
	g, gctx := errgroup.WithContext(ctx)

	for i, p := range pending {
		v, _ := rec.Get(p.Name)

		g.Go(func() error {
			switch p.Arg.Type {
			case TypeFile:
				h, err := fs.OpenFile(gctx, v.Path())
				if err != nil {
					return err
				}

				slots[i] = FileHandle(h)

			case TypeFolder:
				h, err := fs.OpenFolder(gctx, v.Path())
				if err != nil {
					return err
				}

				slots[i] = FolderHandle(h)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, p := range pending {
		rec.set(p.Name, slots[i])
	}

	return nil
}

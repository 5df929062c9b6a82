package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrCancelled is returned when the user cancels at a conflict prompt.
var ErrCancelled = errors.New("generation cancelled")

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	// Force overwrites existing files without consulting a Resolver.
	Force bool
	// Resolver decides about existing files with different content.
	// When nil and Force is false, existing files fail validation.
	Resolver *Resolver
	Writer   io.Writer // Where to write output (defaults to os.Stdout)
}

// Summary counts what Execute did. In a dry run Written counts the files
// that would have been written.
type Summary struct {
	Written   int
	Identical int
	Skipped   int
}

// Execute validates ops, resolves conflicts and commits the writes.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	_, err := ExecuteWithSummary(ctx, ops, opts)
	return err
}

// ExecuteWithSummary is Execute that also reports counts.
func ExecuteWithSummary(ctx context.Context, ops []Operation, opts ExecuteOptions) (Summary, error) {
	var sum Summary
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	allowExisting := opts.Force || opts.Resolver != nil

	// Phase 1: validate everything before touching the disk
	for _, op := range ops {
		if err := op.Validate(ctx, allowExisting); err != nil {
			return sum, fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: decide per file, stage writes
	tx := NewTransaction()
	var staged []Operation
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		write, ok := op.(*WriteFileOp)
		if !ok {
			if opts.DryRun {
				fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
				continue
			}
			if err := op.Execute(ctx); err != nil {
				return sum, fmt.Errorf("execution failed: %w", err)
			}
			fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
			continue
		}

		decision, err := decide(write, opts)
		if err != nil {
			return sum, err
		}
		switch decision {
		case Cancel:
			return sum, ErrCancelled
		case Skip:
			sum.Skipped++
			fmt.Fprintf(opts.Writer, "• Skip %s\n", write.Path)
			continue
		case identical:
			sum.Identical++
			fmt.Fprintf(opts.Writer, "= Identical %s\n", write.Path)
			continue
		}

		if opts.DryRun {
			sum.Written++
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", write.Description())
			continue
		}
		tx.AddFile(write.Path, write.Content, write.mode())
		staged = append(staged, write)
	}

	if opts.DryRun || tx.Len() == 0 {
		return sum, nil
	}

	// Phase 3: commit
	if err := tx.Commit(); err != nil {
		return sum, fmt.Errorf("execution failed: %w", err)
	}
	for _, op := range staged {
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}
	sum.Written = len(staged)
	return sum, nil
}

// identical marks a file whose content already matches; it never leaves
// this package.
const identical ConflictResolution = -1

func decide(op *WriteFileOp, opts ExecuteOptions) (ConflictResolution, error) {
	existing, err := os.ReadFile(op.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Overwrite, nil
	}
	if err != nil {
		return Cancel, fmt.Errorf("cannot read %s: %w", op.Path, err)
	}
	if bytes.Equal(existing, op.Content) {
		return identical, nil
	}
	if opts.Force || opts.Resolver == nil {
		return Overwrite, nil
	}

	res, err := opts.Resolver.ResolveConflict(op.Path, existing, op.Content)
	if err != nil {
		return Cancel, fmt.Errorf("resolving conflict for %s: %w", op.Path, err)
	}
	return res, nil
}

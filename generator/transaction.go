package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Transaction represents a set of file writes that are committed together
type Transaction struct {
	operations []fileOperation
	applied    []appliedWrite
	committed  bool
}

type fileOperation struct {
	path    string
	content []byte
	mode    os.FileMode
}

// appliedWrite remembers what a path held before the transaction wrote it.
type appliedWrite struct {
	path     string
	existed  bool
	previous []byte
	mode     os.FileMode
}

// NewTransaction creates an empty transaction
func NewTransaction() *Transaction {
	return &Transaction{}
}

// AddFile stages a file write (doesn't write yet)
func (t *Transaction) AddFile(path string, content []byte, mode os.FileMode) {
	t.operations = append(t.operations, fileOperation{
		path:    path,
		content: content,
		mode:    mode,
	})
}

// Len returns the number of staged writes.
func (t *Transaction) Len() int {
	return len(t.operations)
}

// Commit writes all staged files to disk.
// If any write fails, every write already made is undone before returning.
func (t *Transaction) Commit() error {
	if t.committed {
		return errors.New("transaction already committed")
	}

	for _, op := range t.operations {
		if err := t.apply(op); err != nil {
			t.undo()
			return err
		}
	}

	t.committed = true
	return nil
}

func (t *Transaction) apply(op fileOperation) error {
	dir := filepath.Dir(op.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	record := appliedWrite{path: op.path}
	if info, err := os.Stat(op.path); err == nil {
		prev, err := os.ReadFile(op.path)
		if err != nil {
			return fmt.Errorf("failed to read existing file %s: %w", op.path, err)
		}
		record.existed = true
		record.previous = prev
		record.mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", op.path, err)
	}

	if err := os.WriteFile(op.path, op.content, op.mode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", op.path, err)
	}

	t.applied = append(t.applied, record)
	return nil
}

// undo reverts applied writes in reverse order. Best effort.
func (t *Transaction) undo() {
	for i := len(t.applied) - 1; i >= 0; i-- {
		w := t.applied[i]
		if w.existed {
			_ = os.WriteFile(w.path, w.previous, w.mode)
		} else {
			_ = os.Remove(w.path)
		}
	}
	t.applied = nil
}

// Rollback undoes an uncommitted transaction (for use in defer).
// It does nothing once Commit has succeeded.
func (t *Transaction) Rollback() {
	if !t.committed {
		t.undo()
	}
}

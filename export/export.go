/*
Package export writes registry renderings to text.

PURPOSE:
  Turns the lazy views of a staff.Registry into the two textual products
  the presentation layers show or save:

  Export file (bit-exact contract):
    <render()>
    <empty line>
    ------------------------------      (30 dashes)
    ... one block per record, insertion order, terminated included

  Summary text (dialog view, terminated part-time records skipped):
    <render()>
    <empty line>
    --------------------------          (26 dashes)

FAILURES:
  Only I/O can fail here. Errors are wrapped with the target path and
  never touch registry state.

SEE ALSO:
  - staff/registry.go: Summary(), ExportAll()
*/
package export

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultFile is where the export is written when no path is given.
	DefaultFile = "staff_list.txt"

	// Separator follows every record in the export file.
	Separator = "------------------------------"

	// SummarySeparator follows every record in the summary text.
	SummarySeparator = "--------------------------"
)

// WriteTo writes one export block per rendering in blocks.
func WriteTo(w io.Writer, blocks iter.Seq[string]) error {
	bw := bufio.NewWriter(w)
	for block := range blocks {
		if _, err := fmt.Fprintln(bw, block); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, Separator); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Text returns the export file content as a string.
func Text(blocks iter.Seq[string]) string {
	var b strings.Builder
	_ = WriteTo(&b, blocks)
	return b.String()
}

// Summary returns the summary dialog text.
func Summary(blocks iter.Seq[string]) string {
	var b strings.Builder
	for block := range blocks {
		b.WriteString(block)
		b.WriteString("\n" + SummarySeparator + "\n")
	}
	return b.String()
}

// Writer saves exports to disk.
type Writer struct {
	logger *zap.Logger
}

func NewWriter(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger}
}

// WriteFile writes the export to path (DefaultFile if empty). The content
// goes to a temporary file in the same directory first and is renamed into
// place, so a failed export never leaves a truncated file behind.
func (w *Writer) WriteFile(path string, blocks iter.Seq[string]) (string, error) {
	if path == "" {
		path = DefaultFile
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".staff-export-*")
	if err != nil {
		w.logger.Error("export failed", zap.String("path", path), zap.Error(err))
		return path, fmt.Errorf("export failed: %w", err)
	}
	tmpName := tmp.Name()
	_ = tmp.Chmod(0o644)

	count := 0
	counted := func(yield func(string) bool) {
		for block := range blocks {
			count++
			if !yield(block) {
				return
			}
		}
	}

	if err := WriteTo(tmp, counted); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		w.logger.Error("export failed", zap.String("path", path), zap.Error(err))
		return path, fmt.Errorf("export failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return path, fmt.Errorf("export failed: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		w.logger.Error("export failed", zap.String("path", path), zap.Error(err))
		return path, fmt.Errorf("export failed: %w", err)
	}

	w.logger.Info("exported staff list", zap.String("path", path), zap.Int("records", count))
	return path, nil
}

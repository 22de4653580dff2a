package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoFiles is returned when a load operation receives no files.
	ErrNoFiles = errors.New("no files selected")
	// ErrTooManyFiles is returned for selections beyond the bilingual pair.
	ErrTooManyFiles = errors.New("please select a maximum of 2 files")
	// ErrNoTextFiles is returned when no selected file is a plain-text file.
	ErrNoTextFiles = errors.New("please select valid text files (.txt)")
)

// InvalidNameError reports a filename that does not follow the
// name_language.txt convention.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid file naming: %s. Use pattern: name_language.txt (e.g., corpus_en.txt, corpus_vn.txt)", e.Name)
}

// BaseNameMismatchError reports two simultaneously selected files whose
// base names disagree.
type BaseNameMismatchError struct {
	FileA string
	FileB string
}

func (e *BaseNameMismatchError) Error() string {
	return fmt.Sprintf("invalid file naming: %s does not match pattern from file %s. Use pattern: name_language.txt (e.g., corpus_en.txt, corpus_vn.txt)", e.FileA, e.FileB)
}

// DuplicateIDError is fatal to one file's commit: it names every entry ID
// that occurred more than once in that file.
type DuplicateIDError struct {
	File string
	IDs  []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate entry IDs found: %s", strings.Join(e.IDs, ", "))
}

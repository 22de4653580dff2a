package ingest

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Giang-Dang/parallel-corpus-tool/internal/adapters/lang"
	"github.com/Giang-Dang/parallel-corpus-tool/internal/domain"
)

// NamedFile is one selected source file: its name plus full content,
// already read by the file-picker collaborator.
type NamedFile struct {
	Name    string
	Content []byte
}

var fileNameRE = regexp.MustCompile(`(?i)^(.+)_([a-z]{2,3})$`)

// ParseLanguageFile splits a filename by the <base>_<languageOrCountry>.<ext>
// convention and normalizes the suffix to a language code. Returns false
// when the name does not follow the convention or the suffix is unknown.
func ParseLanguageFile(f NamedFile) (domain.LanguageFile, bool) {
	base := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
	m := fileNameRE.FindStringSubmatch(base)
	if m == nil {
		return domain.LanguageFile{}, false
	}
	code := lang.NormalizeToLanguageCode(m[2])
	if code == "" {
		return domain.LanguageFile{}, false
	}
	return domain.LanguageFile{
		Name:     f.Name,
		BaseName: m[1],
		Language: code,
		Content:  f.Content,
	}, true
}

// BuildFileGroup validates a selection of 1-2 files and groups them by
// shared base name. Validation order matches the loader flow: count, file
// type, naming convention, base-name agreement.
func BuildFileGroup(files []NamedFile) (domain.FileGroup, error) {
	if len(files) == 0 {
		return domain.FileGroup{}, ErrNoFiles
	}
	if len(files) > 2 {
		return domain.FileGroup{}, ErrTooManyFiles
	}

	var textFiles []NamedFile
	for _, f := range files {
		if strings.HasSuffix(strings.ToLower(f.Name), ".txt") {
			textFiles = append(textFiles, f)
		}
	}
	if len(textFiles) == 0 {
		return domain.FileGroup{}, ErrNoTextFiles
	}

	parsed := make([]domain.LanguageFile, 0, len(textFiles))
	for _, f := range textFiles {
		lf, ok := ParseLanguageFile(f)
		if !ok {
			return domain.FileGroup{}, &InvalidNameError{Name: f.Name}
		}
		parsed = append(parsed, lf)
	}

	if len(parsed) == 2 && parsed[0].BaseName != parsed[1].BaseName {
		return domain.FileGroup{}, &BaseNameMismatchError{FileA: parsed[0].Name, FileB: parsed[1].Name}
	}

	return domain.FileGroup{BaseName: parsed[0].BaseName, Files: parsed}, nil
}

// NeedsConfirmation reports whether processing the group must wait for an
// explicit user confirmation. Single files process immediately; a bilingual
// pair is confirmed first.
func NeedsConfirmation(g domain.FileGroup) bool { return len(g.Files) == 2 }

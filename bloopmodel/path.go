package bloopmodel

import (
	"strings"
	"unicode/utf8"

	"github.com/mikeschinkel/go-dt"
)

// Path is an opaque filesystem location referenced from a configuration
// document: a source root, a jar, an output directory, a toolchain binary.
// The text is kept exactly as written, so a decoded path encodes back to the
// same bytes. Converting with Path(s) is safe whenever Validate accepts it.
type Path string

// EmptyPath is the sentinel substituted for paths that could not be parsed.
const EmptyPath Path = ""

// ParsePath validates s the way a platform path constructor would: it must be
// non-empty valid UTF-8 without NUL bytes. No lexical cleaning is applied.
func ParsePath(s string) (p Path, err error) {
	if s == "" {
		err = dt.NewErr(ErrInvalidPath, ErrEmptyPath)
		goto end
	}
	err = Path(s).Validate()
	if err != nil {
		goto end
	}
	p = Path(s)
end:
	return p, err
}

// MustParsePath is ParsePath for literals known to be valid.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePaths parses every element of ss, stopping at the first failure.
func ParsePaths(ss []string) (paths []Path, err error) {
	var p Path
	paths = make([]Path, len(ss))
	for i, s := range ss {
		p, err = ParsePath(s)
		if err != nil {
			err = dt.WithErr(err, "path", s)
			goto end
		}
		paths[i] = p
	}
end:
	return paths, err
}

func (p Path) String() string {
	return string(p)
}

func (p Path) IsEmpty() bool {
	return p == EmptyPath
}

// Validate reports whether p can be written to a document and read back
// unchanged. The empty path is valid; it marks an omitted field.
func (p Path) Validate() (err error) {
	switch {
	case strings.IndexByte(string(p), 0) >= 0:
		err = dt.NewErr(ErrInvalidPath, "reason", "contains NUL byte")
	case !utf8.ValidString(string(p)):
		err = dt.NewErr(ErrInvalidPath, "reason", "not valid UTF-8")
	}
	return err
}

// Filepath views p as a file for go-dt file operations.
func (p Path) Filepath() dt.Filepath {
	return dt.Filepath(p)
}

// DirPath views p as a directory for go-dt directory operations.
func (p Path) DirPath() dt.DirPath {
	return dt.DirPath(p)
}

package adapter

import (
	"go/parser"
	"go/token"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer can ask
// questions about source files without depending on go/parser directly.
type GoFileAdapter interface {
	// PackageName returns the name in the package clause of the given file.
	PackageName(filename string, src []byte) (string, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// PackageName parses only the package clause of the file.
func (a *LocalGoFileAdapter) PackageName(filename string, src []byte) (string, error) {
	file, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.PackageClauseOnly)
	if err != nil {
		return "", err
	}

	return file.Name.Name, nil
}

package adapter

import (
	"testing"
)

func TestLocalGoFileAdapter_PackageName(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	name, err := adapter.PackageName("main.go", []byte("// Command x.\npackage main\n\nfunc main() {}\n"))
	if err != nil {
		t.Fatalf("PackageName() error = %v", err)
	}

	if name != "main" {
		t.Fatalf("PackageName() = %s, want main", name)
	}
}

func TestLocalGoFileAdapter_PackageName_IgnoresBrokenBody(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	name, err := adapter.PackageName("foo.go", []byte("package foo\n func"))
	if err != nil {
		t.Fatalf("PackageName() error = %v", err)
	}

	if name != "foo" {
		t.Fatalf("PackageName() = %s, want foo", name)
	}
}

func TestLocalGoFileAdapter_PackageName_InvalidClause(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	if _, err := adapter.PackageName("broken.go", []byte("func main() {}")); err == nil {
		t.Fatalf("PackageName() expected error for missing package clause")
	}
}

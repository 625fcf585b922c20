package deploy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRepoName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Fleet Manager", "fleet-manager"},
		{"  Spaced   Out  ", "spaced-out"},
		{"", "my-project"},
		{"already-kebab", "already-kebab"},
	}
	for _, c := range cases {
		if got := RepoName(c.in); got != c.want {
			t.Errorf("RepoName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBundleFiles(t *testing.T) {
	b := New("Fleet Manager", "# Doc\n\nSome `code` here.")

	paths := make([]string, len(b.Files))
	for i, f := range b.Files {
		paths[i] = f.Path
	}
	want := []string{"index.html", "README.md", filepath.Join(".github", "workflows", "pages.yml")}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("files = %v, want %v", paths, want)
		}
	}

	index := b.Files[0].Content
	if !strings.Contains(index, "<title>Fleet Manager</title>") {
		t.Error("index.html missing project title")
	}
	if !strings.Contains(index, "marked.min.js") {
		t.Error("index.html missing markdown renderer")
	}
	// Backticks in the document must be escaped inside the template literal.
	if !strings.Contains(index, "Some \\`code\\` here.") {
		t.Error("index.html did not escape backticks")
	}
	if strings.Contains(index, "Some `code` here.") {
		t.Error("index.html contains raw backticks")
	}

	if b.Files[1].Content != "# Doc\n\nSome `code` here." {
		t.Error("README.md must carry the document verbatim")
	}
	if !strings.Contains(b.Files[2].Content, "actions/deploy-pages@v4") {
		t.Error("workflow missing deploy step")
	}
}

func TestBundleEmptyName(t *testing.T) {
	b := New("", "# Doc")
	if b.RepoName != "my-project" {
		t.Errorf("repo name = %q", b.RepoName)
	}
	if !strings.Contains(b.Files[0].Content, "<title>My Project</title>") {
		t.Error("index.html missing fallback title")
	}
}

func TestWriteTo(t *testing.T) {
	dir := t.TempDir()
	b := New("Demo", "# Demo")
	if err := b.WriteTo(dir); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	for _, f := range b.Files {
		data, err := os.ReadFile(filepath.Join(dir, f.Path))
		if err != nil {
			t.Fatalf("read %s: %v", f.Path, err)
		}
		if string(data) != f.Content {
			t.Errorf("%s content mismatch", f.Path)
		}
	}
}

func TestInstructionsNameRepo(t *testing.T) {
	b := New("Fleet Manager", "# Doc")
	if !strings.Contains(b.Instructions(), "github.io/fleet-manager") {
		t.Error("instructions missing pages URL")
	}
}

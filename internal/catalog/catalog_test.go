package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c) != 9 {
		t.Fatalf("len = %d, want 9", len(c))
	}
	if c[0].Name != "HTML" || c[len(c)-1].Name != "Assembly" {
		t.Fatalf("unexpected order: first=%q last=%q", c[0].Name, c[len(c)-1].Name)
	}
	if got := c.MaxWrongGuesses(); got != 8 {
		t.Fatalf("MaxWrongGuesses = %d, want 8", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langs.json")
	body := `[{"name":"Go","backgroundColor":"#00ADD8","color":"#fff"},{"name":"C","backgroundColor":"#555","color":"#fff"}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MaxWrongGuesses() != 1 {
		t.Fatalf("MaxWrongGuesses = %d, want 1", c.MaxWrongGuesses())
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"empty":      `[]`,
		"single":     `[{"name":"Go","backgroundColor":"#000","color":"#fff"}]`,
		"incomplete": `[{"name":"Go","backgroundColor":"#000","color":"#fff"},{"name":"C"}]`,
		"bad json":   `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(body)); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

// apps/go-server/assets/embed.go
//
// Embedded static assets: word list, language catalog, SQL migrations,
// page templates and stylesheet.

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed languages.json words.txt migrations/*.sql templates/*.html static/*
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded secret word list (lowercased, comments skipped).
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// Languages returns the raw embedded language catalog JSON.
func Languages() ([]byte, error) {
	return FS.ReadFile("languages.json")
}

// Migrations exposes the embedded *.sql files rooted at migrations/.
func Migrations() fs.FS {
	sub, _ := fs.Sub(FS, "migrations")
	return sub
}

// Static exposes the embedded static files rooted at static/.
func Static() fs.FS {
	sub, _ := fs.Sub(FS, "static")
	return sub
}

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	dataDir   = "data"
	pagesDir  = "site"
	publicDir = "public"
)

// skeleton holds the empty data documents Init writes when missing.
var skeleton = map[string]string{
	"publications.json": "[]\n",
	"team.json":         "[]\n",
	"nec.json":          "{\n  \"email\": \"\",\n  \"formUrl\": \"\",\n  \"services\": [],\n  \"howWeWork\": []\n}\n",
	"site.json":         "{\n  \"email\": \"\",\n  \"social\": [],\n  \"metrics\": {}\n}\n",
}

// Init creates the data directory with empty documents and the page and
// asset directories the site expects. Existing files are kept.
func Init() error {
	for _, dir := range []string{dataDir, pagesDir, filepath.Join("assets", "img", "team")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	for name, content := range skeleton {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

// Pages renders every page under site/ into public/.
func Pages() error {
	mg.Deps(Build)
	if err := os.MkdirAll(publicDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", publicDir, err)
	}
	pages, err := filepath.Glob(filepath.Join(pagesDir, "*.html"))
	if err != nil {
		return err
	}
	bin := filepath.Join(binDir, binName)
	for _, p := range pages {
		out := filepath.Join(publicDir, filepath.Base(p))
		if err := sh.RunV(bin, "render", "--data-dir", dataDir, "-i", p, "-o", out); err != nil {
			return fmt.Errorf("rendering %s: %w", p, err)
		}
	}
	fmt.Printf("Rendered %d page(s) into %s\n", len(pages), publicDir)
	return nil
}

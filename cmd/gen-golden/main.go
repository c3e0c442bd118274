package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdhtml"
)

// gen-golden converts every testdata/*.md file and writes the HTML next to it
// as <name>.html. Run it from the module root after an intentional output
// change, then review the diff.
func main() {
	root := "testdata"
	paths, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		fatalf("glob %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markup files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		var out bytes.Buffer
		if err := mdhtml.Convert(mdhtml.ConvertRequest{
			Reader: bytes.NewReader(src),
			Writer: &out,
		}); err != nil {
			fatalf("convert %s: %v", path, err)
		}
		golden := strings.TrimSuffix(path, ".md") + ".html"
		if err := os.WriteFile(golden, out.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", golden, err)
		}
		fmt.Println(golden)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

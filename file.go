package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.structs.dev/gen"
)

// DEFAULTEXT is the zone file extension used when a directory is given.
const DEFAULTEXT = ".zone"

// Filenames expands the inputs into the list of zone files to scan. Each
// input may itself be a comma separated list. When the first input is a
// directory the files directly inside it with one of the extensions are
// used instead.
func Filenames(ctx context.Context, inputs []string, exts ...string) ([]string, error) {
	var files []string
	for _, in := range inputs {
		for _, f := range strings.Split(in, ",") {
			f = strings.TrimSpace(f)
			if f != "" {
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, &Error{
			Category: INPUT,
			Msg:      "no zone files provided",
		}
	}

	info, err := os.Stat(files[0])
	if err != nil || !info.IsDir() {
		return files, nil
	}

	if len(exts) == 0 {
		exts = []string{DEFAULTEXT}
	}

	found := []string{}
	for path := range ReadDirectory(ctx, files[0], exts...) {
		found = append(found, path)
	}

	return found, nil
}

// ReadDirectory reads the regular files of dir, in lexical order,
// providing a channel of file paths. Only files whose extension is one of
// exts are sent when exts is not empty.
func ReadDirectory(
	ctx context.Context,
	dir string,
	exts ...string,
) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		files, err := os.ReadDir(dir)
		if err != nil {
			return
		}

		for _, file := range files {
			if file.IsDir() {
				continue
			}

			if len(exts) > 0 && !gen.Has(exts, filepath.Ext(file.Name())) {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- filepath.Join(dir, file.Name()):
			}
		}
	}()

	return out
}

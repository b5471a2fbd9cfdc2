package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Yurihaia/ycf/internal/decode"
	"github.com/Yurihaia/ycf/internal/format"
	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/source"
)

type FormatResult struct {
	Path    string
	File    *source.File
	Output  []byte
	Changed bool
	// ParseErr is set when the file does not parse; Output then holds
	// the original text untouched.
	ParseErr *parser.ParseError
}

// FormatFile normalizes one document. With write set, a changed file is
// rewritten in place; otherwise only the result is reported.
func FormatFile(path string, opt format.Options, write bool) (*FormatResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	res := &FormatResult{Path: path, File: file}
	out, err := format.Format(file, opt)
	if err != nil {
		if derr, ok := err.(*decode.Error); ok && derr.ParseError() != nil {
			res.ParseErr = derr.ParseError()
			res.Output = out
			return res, nil
		}
		return nil, err
	}

	res.Output = out
	res.Changed = !bytes.Equal(out, file.Content)
	if write && res.Changed {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return res, nil
}

// FormatDir форматирует все *.ycf файлы в директории параллельно
func FormatDir(ctx context.Context, dir string, jobs int, opt format.Options, write bool) ([]FormatResult, error) {
	files, err := listYCFFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := FormatFile(path, opt, write)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

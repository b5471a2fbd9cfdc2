package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Yurihaia/ycf/internal/decode"
	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/source"
)

type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	// ParseErr is nil for a well-formed document.
	ParseErr *parser.ParseError
}

// CheckFile parses a document without building anything from it.
func CheckFile(path string, maxDepth int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	res := &CheckResult{FileSet: fs, File: file}
	d := decode.New(file)
	d.SetMaxDepth(maxDepth)
	if err := d.Document(decode.Discard); err != nil {
		if derr, ok := err.(*decode.Error); ok && derr.ParseError() != nil {
			res.ParseErr = derr.ParseError()
			return res, nil
		}
		return nil, err
	}
	return res, nil
}

// CheckDirResult содержит результат проверки одного файла
type CheckDirResult struct {
	Path     string
	File     *source.File
	ParseErr *parser.ParseError
	// LoadErr reports files that could not be read at all.
	LoadErr error
}

// CheckDir проверяет все *.ycf файлы в директории параллельно
func CheckDir(ctx context.Context, dir string, jobs, maxDepth int) ([]CheckDirResult, error) {
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

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := CheckFile(path, maxDepth)
			if err != nil {
				results[i] = CheckDirResult{Path: path, LoadErr: err}
				return nil
			}
			results[i] = CheckDirResult{
				Path:     path,
				File:     res.File,
				ParseErr: res.ParseErr,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

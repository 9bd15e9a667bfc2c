package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/msgprep/pkg/msgprep"
)

const (
	utf8BOM = "\ufeff"

	// ctxCheckEvery is how many records are read between cancellation checks.
	ctxCheckEvery = 4096
)

// source is one parsed delimited-text file.
type source struct {
	path    string
	header  []string
	records [][]string
}

func (s *source) columnIndex(name string) int {
	for i, h := range s.header {
		if h == name {
			return i
		}
	}
	return -1
}

// readSource parses the file at path. Open/read failures wrap ErrIO,
// structural problems (no header, ragged rows, duplicate headers) wrap ErrSchema.
func (l *Loader) readSource(ctx context.Context, path string) (*source, error) {
	rc, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, msgprep.ErrIO)
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.Comma = l.opts.Delimiter
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: missing header row: %w", path, msgprep.ErrSchema)
	}
	if err != nil {
		return nil, classifyReadError(path, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	seen := make(map[string]struct{}, len(header))
	for _, h := range header {
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("%s: duplicate column %q: %w", path, h, msgprep.ErrSchema)
		}
		seen[h] = struct{}{}
	}

	src := &source{path: path, header: header}
	for n := 0; ; n++ {
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classifyReadError(path, err)
		}
		src.records = append(src.records, record)
	}

	return src, nil
}

func classifyReadError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%s: %v: %w", path, parseErr, msgprep.ErrSchema)
	}
	return fmt.Errorf("read %s: %v: %w", path, err, msgprep.ErrIO)
}

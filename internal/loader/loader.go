// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package loader reads keys line by line from text sources.
package loader

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Lines returns an iterator over the lines of r, without the trailing
// "\n" or "\r\n". A last line without newline is yielded too.
// Lines of any length are supported.
//
// A read error is yielded once and ends the sequence.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReaderSize(r, 64*1024)
		for {
			line, err := br.ReadString('\n')

			switch {
			case err == nil:
				line = strings.TrimSuffix(line[:len(line)-1], "\r")
				if !yield(line, nil) {
					return
				}
			case err == io.EOF:
				if line != "" {
					yield(line, nil)
				}
				return
			default:
				yield("", errors.Wrap(err, "read line"))
				return
			}
		}
	}
}

// Open opens the key source at path, "-" is stdin.
// Files ending in .gz are decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "gzip %s", path)
	}

	return &gzipFile{Reader: zr, file: f}, nil
}

// gzipFile closes the decompressor and the underlying file.
type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return zerr
}

// Keys returns up to limit lines of the source at path, limit 0 means all.
func Keys(path string, limit int) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var keys []string
	for line, err := range Lines(rc) {
		if err != nil {
			return keys, errors.Wrapf(err, "%s:%d", path, len(keys)+1)
		}
		if limit > 0 && len(keys) >= limit {
			break
		}
		keys = append(keys, line)
	}
	return keys, nil
}

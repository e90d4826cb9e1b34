// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package archive implements packaging a directory into a zip archive.
package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// Zip writes every regular file under dir to a deflate compressed zip archive
// at path. File names in the archive are relative to dir and use forward
// slashes. An existing archive at path is removed first. Files are added in
// lexical order with no modification times so the archive only depends on
// the directory contents.
func Zip(path, dir string) (err error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing archive: %w", cerr)
		}
	}()

	zw := zip.NewWriter(f)
	if err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			//nolint:wrapcheck // error is wrapped below
			return err
		}
		return addFile(zw, filepath.ToSlash(rel), p)
	}); err != nil {
		return fmt.Errorf("archiving %q: %w", dir, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, name, path string) error {
	src, err := os.Open(path)
	if err != nil {
		//nolint:wrapcheck // error is wrapped by caller
		return err
	}
	defer src.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("adding %q: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("adding %q: %w", name, err)
	}
	return nil
}

// Walk calls fn for every regular file in the zip archive at path, in archive
// order. The reader passed to fn is only valid until fn returns.
func Walk(path string, fn func(name string, r io.Reader) error) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		if err := walkFile(zf, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkFile(zf *zip.File, fn func(name string, r io.Reader) error) error {
	r, err := zf.Open()
	if err != nil {
		return fmt.Errorf("opening %q: %w", zf.Name, err)
	}
	defer r.Close()

	return fn(zf.Name, r)
}

// hapEM: haplotype inference by expectation-maximization.
// Copyright (c) 2020 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

package internal

import (
	"log"
	"os"
	"path/filepath"
)

// FileOpen is os.Open with panics in place of errors
func FileOpen(name string) *os.File {
	file, err := os.Open(name)
	if err != nil {
		log.Panic(err)
	}
	return file
}

// FileCreate is os.Create with panics in place of errors
func FileCreate(name string) *os.File {
	file, err := os.Create(name)
	if err != nil {
		log.Panic(err)
	}
	return file
}

// Close is file.Close with panics in place of errors
func Close(file *os.File) {
	if err := file.Close(); err != nil {
		log.Panic(err)
	}
}

// MkdirAll is os.MkdirAll with panics in place of errors
func MkdirAll(path string, perm os.FileMode) {
	if err := os.MkdirAll(path, perm); err != nil {
		log.Panic(err)
	}
}

// FullPathname returns an absolute version of filename.
func FullPathname(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filename, nil
	}
	wd, err := os.Getwd()
	return filepath.Join(wd, filename), err
}

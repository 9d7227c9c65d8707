/*
 * fileio.go, part of gocrys.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package fileio reads and writes structures from and to files. The format is
//chosen from the file name (see formats.FormatOf) unless given explicitly.
//Files ending in .zst are transparently zstd-compressed, and files ending in
//.gz gzip-compressed, so POSCAR.zst or cell.cif.gz work as expected.
package fileio

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/formats"
	"github.com/rmera/gocrys/internal/logger"
)

type compression int

const (
	none compression = iota
	zstdComp
	gzipComp
)

type options struct {
	format    formats.Format
	hasFormat bool
	level     int
}

//Option modifies how a file is read or written.
type Option func(*options)

//WithFormat forces the format, instead of guessing it from the file name.
func WithFormat(f formats.Format) Option {
	return func(o *options) {
		o.format = f
		o.hasFormat = true
	}
}

//WithLevel sets the compression level for compressed files. For zstd it
//follows the zstd command line levels (1-22). 0 means the default.
func WithLevel(level int) Option {
	return func(o *options) { o.level = level }
}

//splitName returns the name without its compression suffix, and the compression.
func splitName(name string) (string, compression) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".zst"):
		return name[:len(name)-4], zstdComp
	case strings.HasSuffix(low, ".gz"):
		return name[:len(name)-3], gzipComp
	}
	return name, none
}

//FormatOf guesses the format of the file name, ignoring any compression suffix.
func FormatOf(name string) (formats.Format, error) {
	plain, _ := splitName(name)
	return formats.FormatOf(plain)
}

func resolve(name string, opts []Option) (options, compression, error) {
	var o options
	for _, f := range opts {
		f(&o)
	}
	plain, comp := splitName(name)
	if !o.hasFormat {
		f, err := formats.FormatOf(plain)
		if err != nil {
			return o, comp, err
		}
		o.format = f
	}
	return o, comp, nil
}

//Read parses a structure in format f from r.
func Read(r io.Reader, f formats.Format) (*crys.Structure, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "fileio: reading")
	}
	return formats.Parse(f, string(text))
}

//Write writes S in format f to w.
func Write(w io.Writer, S *crys.Structure, f formats.Format) error {
	text, err := formats.Serialize(f, S)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return errors.Wrap(err, "fileio: writing")
}

//ReadFile reads the structure in the file name.
func ReadFile(name string, opts ...Option) (*crys.Structure, error) {
	o, comp, err := resolve(name, opts)
	if err != nil {
		return nil, err
	}
	fin, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "fileio: opening %s", name)
	}
	defer fin.Close()
	var r io.Reader = fin
	switch comp {
	case zstdComp:
		dec, err := zstd.NewReader(fin)
		if err != nil {
			return nil, errors.Wrapf(err, "fileio: zstd reader for %s", name)
		}
		defer dec.Close()
		r = dec
	case gzipComp:
		gz, err := gzip.NewReader(fin)
		if err != nil {
			return nil, errors.Wrapf(err, "fileio: gzip reader for %s", name)
		}
		defer gz.Close()
		r = gz
	}
	logger.Logger.Debugw("reading structure", "file", name, "format", o.format.String())
	S, err := Read(r, o.format)
	return S, errors.Wrapf(err, "fileio: %s", name)
}

//WriteFile writes S to the file name, which is created or truncated.
func WriteFile(name string, S *crys.Structure, opts ...Option) (err error) {
	o, comp, err := resolve(name, opts)
	if err != nil {
		return err
	}
	fout, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "fileio: creating %s", name)
	}
	defer func() {
		if cerr := fout.Close(); err == nil {
			err = errors.Wrapf(cerr, "fileio: closing %s", name)
		}
	}()
	var w io.WriteCloser
	switch comp {
	case zstdComp:
		zopts := []zstd.EOption{}
		if o.level > 0 {
			zopts = append(zopts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(o.level)))
		}
		w, err = zstd.NewWriter(fout, zopts...)
	case gzipComp:
		level := gzip.DefaultCompression
		if o.level > 0 {
			level = min(o.level, gzip.BestCompression)
		}
		w, err = gzip.NewWriterLevel(fout, level)
	}
	if err != nil {
		return errors.Wrapf(err, "fileio: compressor for %s", name)
	}
	logger.Logger.Debugw("writing structure", "file", name, "format", o.format.String(), "atoms", S.Len())
	if w == nil {
		return Write(fout, S, o.format)
	}
	if err := Write(w, S, o.format); err != nil {
		w.Close()
		return err
	}
	return errors.Wrapf(w.Close(), "fileio: flushing %s", name)
}

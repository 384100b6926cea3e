// Package dtx implements access to LithTech DTX texture resources.
//
// A DTX file opens with a fixed 164-byte header describing the texture's
// dimensions, format version, mipmap and section counts, flag bits and a
// small block of auxiliary metadata. The header is followed by mipmap and
// section data, which this package does not decode.
//
// The header decoder itself lives in the resource package; File is a thin
// convenience for reading it from disk.
package dtx

import (
	"os"

	"github.com/32bitkid/dtx/resource"
)

// File is a reference to a DTX file on disk. A File caches its decoded
// header and is not safe for concurrent use.
type File struct {
	Path   string
	Offset int64

	cache *resource.Header
}

func NewFile(path string) File {
	return File{Path: path}
}

// Header decodes the header at f.Offset. Failure to open the file is
// returned unchanged as an *os.PathError; decode failures are
// *resource.ShortReadError or *resource.IOError.
func (f *File) Header() (resource.Header, error) {
	if f.cache != nil {
		return *f.cache, nil
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return resource.Header{}, err
	}
	defer file.Close()

	header, err := resource.DecodeHeader(file, f.Offset)
	if err != nil {
		return resource.Header{}, err
	}

	f.cache = &header
	return header, nil
}

package resource

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// HeaderSize is the encoded length of a Header. Fields are packed with no
// padding.
const HeaderSize = 164

// CommandStringSize is the width of the command string region.
const CommandStringSize = 128

// CurrentVersion is the Version written by current tools.
const CurrentVersion int32 = -5

const (
	offResourceType  = 0
	offBaseWidth     = 4
	offBaseHeight    = 6
	offVersion       = 8
	offMipmapCount   = 12
	offSectionCount  = 14
	offInternalFlags = 16
	offUserFlags     = 20
	offExtra         = 24
	offCommandString = offExtra + extraSize
)

// Header is the fixed-size leading structure of a DTX file.
type Header struct {
	ResourceType  uint32
	BaseWidth     uint16
	BaseHeight    uint16
	Version       int32
	MipmapCount   uint16
	SectionCount  uint16
	InternalFlags Flags
	UserFlags     int32 // Flags that go on surfaces.
	Extra         ExtraData
	CommandString [CommandStringSize]byte
}

// DecodeHeader reads HeaderSize bytes from r starting at offset.
//
// A source that ends early yields a *ShortReadError; any other read failure
// yields an *IOError. Field values are never validated.
func DecodeHeader(r io.ReaderAt, offset int64) (Header, error) {
	var buf [HeaderSize]byte
	n, err := r.ReadAt(buf[:], offset)
	if n == HeaderSize {
		// ReaderAt may report io.EOF alongside a full read
		return decodeHeader(&buf), nil
	}
	if err == nil || err == io.EOF {
		return Header{}, &ShortReadError{Offset: offset, Want: HeaderSize, Got: n}
	}
	return Header{}, &IOError{Offset: offset, Err: err}
}

// ReadHeader reads a Header from the current position of r.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	switch {
	case err == nil:
		return decodeHeader(&buf), nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return Header{}, &ShortReadError{Want: HeaderSize, Got: n}
	default:
		return Header{}, &IOError{Err: err}
	}
}

// ParseHeader decodes the first HeaderSize bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, &ShortReadError{Want: HeaderSize, Got: len(b)}
	}
	return decodeHeader((*[HeaderSize]byte)(b[:HeaderSize])), nil
}

func decodeHeader(b *[HeaderSize]byte) Header {
	le := binary.LittleEndian

	h := Header{
		ResourceType:  le.Uint32(b[offResourceType:]),
		BaseWidth:     le.Uint16(b[offBaseWidth:]),
		BaseHeight:    le.Uint16(b[offBaseHeight:]),
		Version:       int32(le.Uint32(b[offVersion:])),
		MipmapCount:   le.Uint16(b[offMipmapCount:]),
		SectionCount:  le.Uint16(b[offSectionCount:]),
		InternalFlags: Flags(le.Uint32(b[offInternalFlags:])),
		UserFlags:     int32(le.Uint32(b[offUserFlags:])),
	}
	copy(h.Extra[:], b[offExtra:offCommandString])
	copy(h.CommandString[:], b[offCommandString:])
	return h
}

// MarshalBinary encodes h into its HeaderSize-byte layout.
func (h Header) MarshalBinary() ([]byte, error) {
	le := binary.LittleEndian

	b := make([]byte, HeaderSize)
	le.PutUint32(b[offResourceType:], h.ResourceType)
	le.PutUint16(b[offBaseWidth:], h.BaseWidth)
	le.PutUint16(b[offBaseHeight:], h.BaseHeight)
	le.PutUint32(b[offVersion:], uint32(h.Version))
	le.PutUint16(b[offMipmapCount:], h.MipmapCount)
	le.PutUint16(b[offSectionCount:], h.SectionCount)
	le.PutUint32(b[offInternalFlags:], uint32(h.InternalFlags))
	le.PutUint32(b[offUserFlags:], uint32(h.UserFlags))
	copy(b[offExtra:], h.Extra[:])
	copy(b[offCommandString:], h.CommandString[:])
	return b, nil
}

func (h *Header) UnmarshalBinary(b []byte) error {
	decoded, err := ParseHeader(b)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// IsCurrentVersion reports whether h carries CurrentVersion.
func (h Header) IsCurrentVersion() bool { return h.Version == CurrentVersion }

// Command returns the command string up to its first NUL. Bytes after the
// terminator are left untouched in CommandString.
func (h Header) Command() []byte {
	cmd := h.CommandString[:]
	if i := bytes.IndexByte(cmd, 0); i >= 0 {
		cmd = cmd[:i]
	}
	return cmd
}

func (h Header) String() string {
	var sb strings.Builder
	sb.WriteString("Header {\n")
	fmt.Fprintf(&sb, "    ResourceType: %d,\n", h.ResourceType)
	fmt.Fprintf(&sb, "    BaseWidth: %d,\n", h.BaseWidth)
	fmt.Fprintf(&sb, "    BaseHeight: %d,\n", h.BaseHeight)
	fmt.Fprintf(&sb, "    Version: %d,\n", h.Version)
	fmt.Fprintf(&sb, "    MipmapCount: %d,\n", h.MipmapCount)
	fmt.Fprintf(&sb, "    SectionCount: %d,\n", h.SectionCount)
	fmt.Fprintf(&sb, "    InternalFlags: %d %v,\n", int32(h.InternalFlags), h.InternalFlags)
	fmt.Fprintf(&sb, "    UserFlags: %d,\n", h.UserFlags)
	fmt.Fprintf(&sb, "    Extra: %v,\n", h.Extra)
	fmt.Fprintf(&sb, "    CommandString: %q,\n", h.Command())
	sb.WriteString("}")
	return sb.String()
}

package resource

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"

	"github.com/32bitkid/bitreader"
)

const extraSize = 12

// ExtraData is the 12-byte auxiliary region of a header. The file does not
// say how it should be read; the byte view and the word view are both valid
// and the caller picks one per sub-field.
//
// bytes  |
//  0     | texture group
//  1     | number of mipmaps to use at runtime
//  2     | BPPIdent
//  3     | mipmap offset when S3TC is not supported
//  4     | mipmap offset applied to texture coords
//  5     | texture priority
//  6-9   | detail texture scale (float32)
// 10-11  | detail texture angle (integer degrees)
//
type ExtraData [extraSize]byte

// Bytes returns the byte view.
func (e ExtraData) Bytes() [extraSize]byte { return e }

// Words returns the region as three little-endian 32-bit words.
func (e ExtraData) Words() [3]uint32 {
	var w [3]uint32
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(e[i*4:])
	}
	return w
}

func (e ExtraData) TextureGroup() uint8        { return e[0] }
func (e ExtraData) MipmapsToUse() uint8        { return e[1] }
func (e ExtraData) BPPIdent() BPPIdent         { return BPPIdent(e[2]) }
func (e ExtraData) NonS3TCMipmapOffset() uint8 { return e[3] }
func (e ExtraData) UIMipmapOffset() uint8      { return e[4] }
func (e ExtraData) TexturePriority() uint8     { return e[5] }

func (e ExtraData) DetailTextureScale() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(e[6:10]))
}

func (e ExtraData) DetailTextureAngle() int16 {
	return int16(binary.LittleEndian.Uint16(e[10:12]))
}

// ExtraFields holds every byte-view sub-field of ExtraData.
type ExtraFields struct {
	TextureGroup        uint8
	MipmapsToUse        uint8
	BPPIdent            BPPIdent
	NonS3TCMipmapOffset uint8
	UIMipmapOffset      uint8
	TexturePriority     uint8
	DetailTextureScale  float32
	DetailTextureAngle  int16
}

// Fields decodes all sub-fields in one pass.
func (e ExtraData) Fields() ExtraFields {
	// bitreader refills a 64-bit word at a time
	var padded [16]byte
	copy(padded[:], e[:])

	f, err := readExtraFields(bytes.NewReader(padded[:]))
	if err != nil {
		panic(err)
	}
	return f
}

func (e ExtraData) String() string {
	w := e.Words()
	return fmt.Sprintf("[%d, %d, %d]", w[0], w[1], w[2])
}

type extraReader struct {
	bits bitreader.BitReader
}

func (x extraReader) read8() (uint8, error) {
	return x.bits.Read8(8)
}

// le16 reads two bytes stored low byte first.
func (x extraReader) le16() (uint16, error) {
	lo, err := x.read8()
	if err != nil {
		return 0, err
	}
	hi, err := x.read8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// le32 reads four bytes stored low byte first.
func (x extraReader) le32() (uint32, error) {
	v, err := x.bits.Read32(32)
	if err != nil {
		return 0, err
	}
	return bits.ReverseBytes32(v), nil
}

func readExtraFields(r io.Reader) (ExtraFields, error) {
	x := extraReader{bits: bitreader.NewReader(r)}

	var f ExtraFields
	for _, dst := range []*uint8{
		&f.TextureGroup,
		&f.MipmapsToUse,
		(*uint8)(&f.BPPIdent),
		&f.NonS3TCMipmapOffset,
		&f.UIMipmapOffset,
		&f.TexturePriority,
	} {
		b, err := x.read8()
		if err != nil {
			return ExtraFields{}, err
		}
		*dst = b
	}

	scale, err := x.le32()
	if err != nil {
		return ExtraFields{}, err
	}
	f.DetailTextureScale = math.Float32frombits(scale)

	angle, err := x.le16()
	if err != nil {
		return ExtraFields{}, err
	}
	f.DetailTextureAngle = int16(angle)

	return f, nil
}

package resource

// BPPIdent identifies the pixel format a texture is stored in.
type BPPIdent uint8

const (
	BPP8Palette BPPIdent = iota
	BPP8
	BPP16
	BPP32
	BPPS3TCDXT1
	BPPS3TCDXT3
	BPPS3TCDXT5
	BPP32Palette
	BPP24
)

func (b BPPIdent) String() string {
	switch b {
	case BPP8Palette:
		return "BPP(8P)"
	case BPP8:
		return "BPP(8)"
	case BPP16:
		return "BPP(16)"
	case BPP32:
		return "BPP(32)"
	case BPPS3TCDXT1:
		return "BPP(S3TC_DXT1)"
	case BPPS3TCDXT3:
		return "BPP(S3TC_DXT3)"
	case BPPS3TCDXT5:
		return "BPP(S3TC_DXT5)"
	case BPP32Palette:
		return "BPP(32P)"
	case BPP24:
		return "BPP(24)"
	}
	return "BPP(UNKNOWN)"
}

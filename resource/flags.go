package resource

import (
	"fmt"
	"strings"
)

// Flags is the InternalFlags bitmask of a DTX header.
type Flags int32

const (
	// Fullbrite marks a texture with fullbright colors.
	Fullbrite Flags = 1 << 0
	// Prefer16Bit uses 16-bit, even in 32-bit mode.
	Prefer16Bit Flags = 1 << 1
	// MipsAllocated means each mip has its texture data allocated.
	MipsAllocated Flags = 1 << 2
	// SectionsFixed is set on every texture written after the section
	// count was corrected.
	SectionsFixed Flags = 1 << 3
	// NoSysCache keeps the texture out of the texture cache list. Never saved.
	NoSysCache Flags = 1 << 6
	// Prefer4444 uses a 4444 texture in 16-bit mode.
	Prefer4444 Flags = 1 << 7
	// Prefer5551 uses a 5551 texture in 16-bit mode.
	Prefer5551 Flags = 1 << 8
	// Keep32BitSysCopy keeps the system copy at 32 bits instead of the
	// device format.
	Keep32BitSysCopy Flags = 1 << 9
	// CubeMap is a cube environment map. +x lives in the normal data area,
	// the other faces in their own sections.
	CubeMap Flags = 1 << 10
	// BumpMap has 8-bit U and V components for the bump normal.
	BumpMap Flags = 1 << 11
	// LuminanceBumpMap has 8 bits each for luminance, U and V.
	LuminanceBumpMap Flags = 1 << 12
)

// AllFlags lists every named flag in bit order.
var AllFlags = [...]Flags{
	Fullbrite,
	Prefer16Bit,
	MipsAllocated,
	SectionsFixed,
	NoSysCache,
	Prefer4444,
	Prefer5551,
	Keep32BitSysCopy,
	CubeMap,
	BumpMap,
	LuminanceBumpMap,
}

var flagNames = map[Flags]string{
	Fullbrite:        "Fullbrite",
	Prefer16Bit:      "Prefer16Bit",
	MipsAllocated:    "MipsAllocated",
	SectionsFixed:    "SectionsFixed",
	NoSysCache:       "NoSysCache",
	Prefer4444:       "Prefer4444",
	Prefer5551:       "Prefer5551",
	Keep32BitSysCopy: "Keep32BitSysCopy",
	CubeMap:          "CubeMap",
	BumpMap:          "BumpMap",
	LuminanceBumpMap: "LuminanceBumpMap",
}

// Has reports whether every bit of f is set.
func (fl Flags) Has(f Flags) bool { return fl&f == f }

func (fl Flags) String() string {
	if fl == 0 {
		return "Flags(0)"
	}

	var names []string
	rest := fl
	for _, f := range AllFlags {
		if fl&f != 0 {
			names = append(names, flagNames[f])
			rest &^= f
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	return "Flags(" + strings.Join(names, "|") + ")"
}

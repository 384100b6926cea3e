package resource

import (
	"math/bits"
	"testing"
)

func TestFlagsAreSingleBits(t *testing.T) {
	var seen Flags
	for _, f := range AllFlags {
		if bits.OnesCount32(uint32(f)) != 1 {
			t.Errorf("%v is not a single bit", f)
		}
		if seen&f != 0 {
			t.Errorf("%v shares a bit with another flag", f)
		}
		seen |= f
	}
}

func TestFlagsIsolateBit(t *testing.T) {
	all := Flags(-1)
	for _, f := range AllFlags {
		if all&f != f {
			t.Errorf("%v: expected(%#x) != actual(%#x)", f, uint32(f), uint32(all&f))
		}
	}
}

func TestFlagBitPositions(t *testing.T) {
	type flagCase struct {
		flag Flags
		bit  uint
	}
	cases := []flagCase{
		{Fullbrite, 0},
		{Prefer16Bit, 1},
		{MipsAllocated, 2},
		{SectionsFixed, 3},
		{NoSysCache, 6},
		{Prefer4444, 7},
		{Prefer5551, 8},
		{Keep32BitSysCopy, 9},
		{CubeMap, 10},
		{BumpMap, 11},
		{LuminanceBumpMap, 12},
	}
	for _, c := range cases {
		if c.flag != 1<<c.bit {
			t.Errorf("%v: expected bit %d", c.flag, c.bit)
		}
	}
}

func TestFlagsHas(t *testing.T) {
	fl := Fullbrite | CubeMap
	if !fl.Has(Fullbrite) || !fl.Has(CubeMap) || !fl.Has(Fullbrite|CubeMap) {
		t.Error("expected flags to be set")
	}
	if fl.Has(BumpMap) || fl.Has(CubeMap|BumpMap) {
		t.Error("unexpected BumpMap")
	}
}

func TestFlagsString(t *testing.T) {
	type stringCase struct {
		flags    Flags
		expected string
	}
	cases := []stringCase{
		{0, "Flags(0)"},
		{Fullbrite | CubeMap, "Flags(Fullbrite|CubeMap)"},
		{BumpMap | 1<<4, "Flags(BumpMap|0x10)"},
		{Flags(-1 << 31), "Flags(0x80000000)"},
	}
	for _, c := range cases {
		if actual := c.flags.String(); actual != c.expected {
			t.Errorf("expected(%s) != actual(%s)", c.expected, actual)
		}
	}
}

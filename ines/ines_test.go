package ines

import (
	"bytes"
	"errors"
	"testing"
)

func makeImage(prgBanks, chrBanks uint8, flags6, flags7 uint8, prg, chr []byte) []byte {
	h := make([]byte, headerSize)
	copy(h, []byte(magicNES0))
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7

	buf := append([]byte{}, h...)
	buf = append(buf, prg...)
	buf = append(buf, chr...)
	return buf
}

func TestParseRoundTrip(t *testing.T) {
	prg := bytes.Repeat([]byte{0xAB}, prgBankSize)
	chr := bytes.Repeat([]byte{0xCD}, chrBankSize)
	raw := makeImage(1, 1, 0, 0, prg, chr)

	img, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if img.Header.PrgBanks != 1 || img.Header.ChrBanks != 1 {
		t.Errorf("got PrgBanks=%d ChrBanks=%d, want 1, 1", img.Header.PrgBanks, img.Header.ChrBanks)
	}
	if len(img.Prg) != 1 || len(img.Chr) != 1 {
		t.Fatalf("got %d PRG banks, %d CHR banks, want 1 each", len(img.Prg), len(img.Chr))
	}

	var out []byte
	out = append(out, raw[:headerSize]...)
	out = append(out, img.Prg[0][:]...)
	out = append(out, img.Chr[0][:]...)

	if !bytes.Equal(out, raw) {
		t.Errorf("round-tripped image != original")
	}
}

func TestParseZeroChrBanksYieldsOneEmptyBank(t *testing.T) {
	prg := bytes.Repeat([]byte{0x11}, prgBankSize)
	raw := makeImage(1, 0, 0, 0, prg, nil)

	img, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(img.Chr) != 1 {
		t.Fatalf("got %d CHR banks, want 1 (empty)", len(img.Chr))
	}
	for i, b := range img.Chr[0] {
		if b != 0 {
			t.Fatalf("CHR bank not empty at %d: %02x", i, b)
		}
	}
}

func TestParseRejects(t *testing.T) {
	prg := bytes.Repeat([]byte{0}, prgBankSize)
	chr := bytes.Repeat([]byte{0}, chrBankSize)

	cases := []struct {
		name string
		raw  []byte
		want error
	}{
		{"bad magic", func() []byte {
			r := makeImage(1, 1, 0, 0, prg, chr)
			r[0] = 'X'
			return r
		}(), ErrBadMagic},
		{"bad padding", func() []byte {
			r := makeImage(1, 1, 0, 0, prg, chr)
			r[12] = 0xFF
			return r
		}(), ErrBadPadding},
		{"nes2.0", makeImage(1, 1, 0, 0x08, prg, chr), ErrUnsupportedFormat},
		{"mapper != 0", makeImage(1, 1, 0x10, 0, prg, chr), ErrUnsupportedMapper},
		{"truncated", makeImage(1, 1, 0, 0, prg[:100], chr), ErrTruncated},
		{"trainer", makeImage(1, 1, trainerFlag, 0, prg, chr), ErrTrainerUnsupported},
	}

	for _, tc := range cases {
		_, err := Parse(tc.raw)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: got err %v, want %v", tc.name, err, tc.want)
		}
	}
}

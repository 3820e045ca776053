package ppuregs

import "testing"

func TestReadWrite(t *testing.T) {
	r := New()
	r.Write(0, 0x11)
	r.Write(7, 0x22)

	if got := r.Read(0); got != 0x11 {
		t.Errorf("Read(0) = %#02x, want 0x11", got)
	}
	if got := r.Read(7); got != 0x22 {
		t.Errorf("Read(7) = %#02x, want 0x22", got)
	}
}

func TestStatusReadClearsBit7(t *testing.T) {
	r := New()
	r.Write(statusReg, 0xFF)

	if got := r.Read(statusReg); got != 0xFF {
		t.Fatalf("first Read(status) = %#02x, want 0xFF", got)
	}
	if got := r.Read(statusReg); got&0x80 != 0 {
		t.Errorf("second Read(status) = %#02x, bit 7 should be clear", got)
	}
}

func TestOutOfRangeIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Read(8) didn't panic")
		}
	}()
	New().Read(8)
}

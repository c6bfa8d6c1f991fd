package registers_test

import (
	"testing"

	"github.com/sammosampson/go-coff/internal/registers"
)

func TestHasHighBit(t *testing.T) {
	tests := []struct {
		name string
		reg  registers.Code
		want bool
	}{
		{"AX", registers.AX, false},
		{"CX", registers.CX, false},
		{"DX", registers.DX, false},
		{"SP", registers.SP, false},
		{"BP", registers.BP, false},
		{"R8", registers.R8, true},
		{"R9", registers.R9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reg.HasHighBit(); got != tt.want {
				t.Errorf("HasHighBit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLow3(t *testing.T) {
	tests := []struct {
		name string
		reg  registers.Code
		want byte
	}{
		{"AX", registers.AX, 0x00},
		{"R8", registers.R8, 0x00},
		{"R9", registers.R9, 0x01},
		{"BP", registers.BP, 0x05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reg.Low3(); got != tt.want {
				t.Errorf("Low3() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

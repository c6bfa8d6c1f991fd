package lowering

import "testing"

func TestSymbolIndexForReversesDeclarationOrder(t *testing.T) {
	const total = 3
	cases := []struct {
		irIndex uint32
		want    uint32
	}{
		{0, 9}, // first-declared symbol, lands last
		{1, 8},
		{2, 7}, // last-declared symbol, lands first after the preamble and .absolut
	}

	for _, c := range cases {
		if got := symbolIndexFor(total, c.irIndex); got != c.want {
			t.Errorf("symbolIndexFor(%d, %d) = %d, want %d", total, c.irIndex, got, c.want)
		}
	}
}

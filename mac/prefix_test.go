package mac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr error
	}{
		{"empty", "", []byte{}, nil},
		{"colon", "02:AB", []byte{0x02, 0xAB}, nil},
		{"dash_lower", "02-ab-cd", []byte{0x02, 0xAB, 0xCD}, nil},
		{"bare", "02abcd", []byte{0x02, 0xAB, 0xCD}, nil},
		{"spaces_and_dots", " 02.ab cd ", []byte{0x02, 0xAB, 0xCD}, nil},
		{"only_separators", ":::--", []byte{}, nil},
		{"five_bytes", "00:11:22:33:44", []byte{0x00, 0x11, 0x22, 0x33, 0x44}, nil},
		{"odd_length", "ABCDE", nil, ErrInvalidPrefix},
		{"six_bytes", "001122334455", nil, ErrInvalidPrefix},
		{"six_bytes_colon", "00:11:22:33:44:55", nil, ErrInvalidPrefix},
		{"non_hex_letters", "GG", nil, ErrInvalidHexDigit},
		{"hex_literal_marker", "0x02", nil, ErrInvalidHexDigit},
		{"non_ascii_letter", "é0", nil, ErrInvalidHexDigit},
		{"fullwidth_digits", "０２", nil, ErrInvalidHexDigit},
		{"arabic_indic_digits", "٠٢", nil, ErrInvalidHexDigit},
		{"odd_before_hex_check", "GGG", nil, ErrInvalidPrefix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePrefix(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Bytes())
			assert.Equal(t, len(tt.want), p.Len())
		})
	}
}

func TestPrefix_String(t *testing.T) {
	assert.Equal(t, "02:AB:CD", MustParsePrefix("02abcd").String())
	assert.Equal(t, "", Prefix{}.String())
}

func TestPrefix_BytesIsCopy(t *testing.T) {
	p := MustParsePrefix("02:AB")
	b := p.Bytes()
	b[0] = 0xFF
	assert.Equal(t, []byte{0x02, 0xAB}, p.Bytes())
}

func TestPrefix_FirstByteAltered(t *testing.T) {
	assert.False(t, Prefix{}.FirstByteAltered(true))
	assert.False(t, MustParsePrefix("02").FirstByteAltered(true))
	assert.True(t, MustParsePrefix("02").FirstByteAltered(false))
	assert.True(t, MustParsePrefix("01").FirstByteAltered(false))
	assert.False(t, MustParsePrefix("00:AA").FirstByteAltered(false))
}

func TestMustParsePrefix_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParsePrefix("ABC") })
}

func FuzzParsePrefix(f *testing.F) {
	for _, seed := range []string{"", "02:AB", "ABCDE", "GG", "00:11:22:33:44:55", "é0"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		p, err := ParsePrefix(s)
		if err != nil {
			return
		}
		if p.Len() > MaxPrefixLen {
			t.Fatalf("ParsePrefix(%q) returned %d bytes", s, p.Len())
		}
		again, err := ParsePrefix(p.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", p.String(), err)
		}
		if again.String() != p.String() {
			t.Fatalf("reparse %q = %q", p.String(), again.String())
		}
	})
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"thousands dots", "1.234.567", "1234567", true},
		{"dot thousands comma decimal", "1.234,56", "1234.56", true},
		{"plain integer", "1234", "1234", true},
		{"comma thousands dot decimal", "1,234,567.89", "1234567.89", true},
		{"single dot two decimals", "10.50", "10.5", true},
		{"single comma two decimals", "10,50", "10.5", true},
		{"single dot three digits is grouping", "10.000", "10000", true},
		{"rp prefix", "Rp 10.000.000", "10000000", true},
		{"rp dot prefix", "Rp. 5.000", "5000", true},
		{"idr prefix", "IDR 2.500,75", "2500.75", true},
		{"embedded spaces", "1 234 567", "1234567", true},
		{"no digits", "Rp", "", false},
		{"empty", "", "", false},
		{"letters only", "sepuluh juta", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := NormalizeAmount(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, d.String())
			}
		})
	}
}

func TestScanAmounts(t *testing.T) {
	p := New(Config{}, nil)

	t.Run("prefixed and grouped amounts", func(t *testing.T) {
		text := "Nilai sebesar Rp 10.000.000 termasuk pajak 1.100.000"
		fields := p.scanAmounts(text)
		require.Len(t, fields, 2)
		assert.Equal(t, "10000000", fields[0].Value)
		assert.Equal(t, "Rp 10.000.000", fields[0].Raw)
		assert.Equal(t, "1100000", fields[1].Value)
	})

	t.Run("bare small integers are not candidates", func(t *testing.T) {
		assert.Empty(t, p.scanAmounts("halaman 3 dari 12, tahun 2024"))
	})

	t.Run("date components are not candidates", func(t *testing.T) {
		assert.Empty(t, p.scanAmounts("tertanggal 15/03/2024"))
	})
}

package lot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"LOT 526555585", "LOT526555585", true},
		{"lot526555585", "LOT526555585", true},
		{"Lot 526555585", "LOT526555585", true},
		{"526555585", "LOT526555585", true},
		{"LOT526555585_230506", "LOT526555585_230506", true},
		{"LOT 526555585 230506", "LOT526555585_230506", true},
		{"lot pl 526555585", "LOT526555585", true},
		{"LOTPL526555585", "LOT526555585", true},
		{"LOT526555585_231399", "LOT526555585", true},
		{"", "", false},
		{"LOT123", "", false},
		{"LOT12345678901", "", false},
		{"ABC526555585", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Format(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeFilename(t *testing.T) {
	tests := []struct {
		name     string
		wantOK   bool
		original string
		lot      string
	}{
		{"LOTPL10021410_240506.xlsx", true, "LOTPL10021410_240506", "LOT10021410_240506"},
		{"dostawa_PLLOT10021410.csv", true, "LOT10021410", "LOT10021410"},
		{" lot 526555585_991399.xlsx ", true, "lot 526555585_991399", "LOT526555585"},
		{"PL_LOT_526555585.csv", true, "LOT_526555585", "LOT526555585"},
		{"faktura.xlsx", false, "", ""},
		{"LOT12345.csv", false, "", ""},
		{"", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := AnalyzeFilename(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.original, m.Original)
			assert.Equal(t, tt.lot, m.Lot)
		})
	}
}

func TestHasLotColumn(t *testing.T) {
	assert.True(t, HasLotColumn([]string{"Nazwa", "LOT", "Cena"}))
	assert.True(t, HasLotColumn([]string{"Numer partii"}))
	assert.True(t, HasLotColumn([]string{"Partia"}))
	assert.True(t, HasLotColumn([]string{"Batch Number"}))
	assert.False(t, HasLotColumn([]string{"Lotnisko", "Cena"}))
	assert.False(t, HasLotColumn(nil))
	assert.True(t, IsColumn("Lot number"))
}

func TestAnalyzeValues(t *testing.T) {
	res := AnalyzeValues([]string{"LOT526555585", " lot10021410_240506 ", "abc", "", "nan"})
	assert.True(t, res.HasValidLots)
	assert.Equal(t, []string{"LOT526555585", "lot10021410_240506"}, res.ValidLots)
	assert.False(t, res.AllEmpty)

	empty := AnalyzeValues([]string{"", "NaN", "None", "  "})
	assert.True(t, empty.AllEmpty)
	assert.False(t, empty.HasValidLots)
	assert.Empty(t, empty.ValidLots)
}

func TestValidateFormat(t *testing.T) {
	assert.True(t, ValidateFormat("LOT123456"))
	assert.True(t, ValidateFormat("lot1234567890_240229"))
	assert.False(t, ValidateFormat("LOT123456_241301"))
	assert.False(t, ValidateFormat("LOT123456_240100"))
	assert.False(t, ValidateFormat("LOT12345"))
	assert.False(t, ValidateFormat("123456"))
}

package curiosity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/curiosity"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

func TestNameVibration(t *testing.T) {
	tests := []struct {
		name       string
		raw, value int
		karmic     int
	}{
		{"Fido", 25, 7, 0},
		{"luna", 12, 3, 0},
		{"Leo", 14, 5, 14},
		{"Max", 11, 2, 0},
		{"Mia Luna", 26, 8, 0},
		{"", 0, 0, 0},
		{"R2-D2", 13, 4, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := curiosity.NameVibration(tt.name)
			assert.Equal(t, tt.raw, v.Raw)
			assert.Equal(t, tt.value, v.Value)
			assert.Equal(t, tt.karmic, v.KarmicBase)
			assert.Equal(t, tt.karmic != 0, v.HasKarmicDebt())
		})
	}
}

func TestHouseNumber(t *testing.T) {
	tests := []struct {
		in    string
		value int
		ok    bool
	}{
		{"10", 1, true},
		{"2/12", 5, true},
		{"2 / 12", 5, true},
		{"2/A", 3, true},
		{"2/a", 3, true},
		{"2/AB", 2, true},
		{"10 B", 1, true},
		{"N. 7", 7, true},
		{"0", 0, true},
		{"99999999999999999999999", 9, true},
		{"", 0, false},
		{"bis", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := curiosity.HouseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestStreetName(t *testing.T) {
	tests := map[string]string{
		"Piazza Manzoni":          "manzoni",
		"cs casa simonelli":       "simonelli",
		"Via  dei   Mille, n. 12": "dei mille",
		"Località Ponte":          "località ponte",
		"Viale":                   "",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, curiosity.StreetName(in))
		})
	}
}

func TestAnalyzeAddress(t *testing.T) {
	tests := []struct {
		in      string
		source  string
		matched string
		value   int
	}{
		{"Via Roma 10", config.AddressSourceNumber, "10", 1},
		{"Via Roma 2/A", config.AddressSourceNumber, "2/A", 3},
		{"Corso Italia 2/12", config.AddressSourceNumber, "2/12", 5},
		{"cs casa simonelli n. 2", config.AddressSourceNumber, "2", 2},
		{"Piazza Manzoni", config.AddressSourceStreet, "manzoni", 2},
		{"cs casa simonelli", config.AddressSourceStreet, "simonelli", 9},
		{"Via", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a := curiosity.AnalyzeAddress(tt.in)
			assert.Equal(t, tt.in, a.Input)
			assert.Equal(t, tt.source, a.Source)
			assert.Equal(t, tt.matched, a.Matched)
			assert.Equal(t, tt.value, a.Value)
			assert.Equal(t, tt.value > 0, a.Meaningful())
		})
	}
}

func TestAnalyzeAddress_ZeroHouseNumberIsNotMeaningful(t *testing.T) {
	a := curiosity.AnalyzeAddress("Via Roma 0")
	assert.Equal(t, config.AddressSourceNumber, a.Source)
	assert.False(t, a.Meaningful())
}

func TestEnergySchema_MarioRossi(t *testing.T) {
	c := numerology.ComputeCore(numerology.Person{
		FirstName: "MARIO",
		LastName:  "ROSSI",
		Birth:     numerology.BirthDate{Day: 15, Month: 6, Year: 1985},
	}, 2024)

	e := curiosity.EnergySchema(c)
	assert.Equal(t, curiosity.Energy{CohesiveUnion: 5, EnergeticUnion: 2, Interconnection: 4}, e)
	assert.Equal(t, [3]int{5, 2, 4}, e.Values())
}

func TestEnergySchema_AlwaysSingleDigit(t *testing.T) {
	for day := 1; day <= 28; day += 3 {
		for month := 1; month <= 12; month++ {
			c := numerology.ComputeCore(numerology.Person{
				FirstName: "ANNA", LastName: "VERDI",
				Birth: numerology.BirthDate{Day: day, Month: month, Year: 1977},
			}, 2024)
			for _, v := range curiosity.EnergySchema(c).Values() {
				assert.LessOrEqual(t, v, 9)
				assert.GreaterOrEqual(t, v, 1)
			}
		}
	}
}

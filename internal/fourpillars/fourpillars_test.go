package fourpillars_test

import (
	"github.com/miyakoshi/septade/internal/fourpillars"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		birthdate string
		birthTime string
		want      fourpillars.Chart
		wantErr   error
	}{
		{
			name:      "known date without birth time",
			birthdate: "1990-05-15",
			birthTime: "",
			want: fourpillars.Chart{
				Year:  fourpillars.Pillar{Stem: "庚", Branch: "午", HiddenStems: "丁己"},
				Month: fourpillars.Pillar{Stem: "庚", Branch: "午", HiddenStems: "丁己"},
				Day:   fourpillars.Pillar{Stem: "乙", Branch: "亥", HiddenStems: "壬甲"},
				Hour: fourpillars.Pillar{
					Stem:        fourpillars.Unknown,
					Branch:      fourpillars.Unknown,
					HiddenStems: fourpillars.Unknown,
				},
			},
		},
		{
			name:      "known date with birth time",
			birthdate: "1990-05-15",
			birthTime: "14:30",
			want: fourpillars.Chart{
				Year:  fourpillars.Pillar{Stem: "庚", Branch: "午", HiddenStems: "丁己"},
				Month: fourpillars.Pillar{Stem: "庚", Branch: "午", HiddenStems: "丁己"},
				Day:   fourpillars.Pillar{Stem: "乙", Branch: "亥", HiddenStems: "壬甲"},
				Hour:  fourpillars.Pillar{Stem: "癸", Branch: "未", HiddenStems: "己丁乙"},
			},
		},
		{
			name:      "millennium date",
			birthdate: "2000-01-01",
			birthTime: "",
			want: fourpillars.Chart{
				Year:  fourpillars.Pillar{Stem: "庚", Branch: "辰", HiddenStems: "戊乙癸"},
				Month: fourpillars.Pillar{Stem: "丙", Branch: "寅", HiddenStems: "甲丙戊"},
				Day:   fourpillars.Pillar{Stem: "癸", Branch: "丑", HiddenStems: "己癸辛"},
				Hour: fourpillars.Pillar{
					Stem:        fourpillars.Unknown,
					Branch:      fourpillars.Unknown,
					HiddenStems: fourpillars.Unknown,
				},
			},
		},
		{
			name:      "late hour wraps to the first branch",
			birthdate: "1990-05-15",
			birthTime: "23:10",
			want: fourpillars.Chart{
				Year:  fourpillars.Pillar{Stem: "庚", Branch: "午", HiddenStems: "丁己"},
				Month: fourpillars.Pillar{Stem: "庚", Branch: "午", HiddenStems: "丁己"},
				Day:   fourpillars.Pillar{Stem: "乙", Branch: "亥", HiddenStems: "壬甲"},
				// Branch index 0 (子) and stem base of 乙 gives 丙.
				Hour: fourpillars.Pillar{Stem: "丙", Branch: "子", HiddenStems: "癸"},
			},
		},
		{
			name:      "invalid birthdate fails",
			birthdate: "not-a-date",
			wantErr:   fourpillars.ErrInvalidDate,
		},
		{
			name:      "impossible calendar date fails",
			birthdate: "1990-02-30",
			wantErr:   fourpillars.ErrInvalidDate,
		},
		{
			name:      "invalid birth time fails",
			birthdate: "1990-05-15",
			birthTime: "quarter past nine",
			wantErr:   fourpillars.ErrInvalidDate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := fourpillars.Calculate(tt.birthdate, tt.birthTime)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, chart)
		})
	}
}

func TestCalculate_deterministic(t *testing.T) {
	first, err := fourpillars.Calculate("1985-11-03", "06:45")
	require.NoError(t, err)
	for range 5 {
		chart, err := fourpillars.Calculate("1985-11-03", "06:45")
		require.NoError(t, err)
		require.Equal(t, first, chart)
	}
}

package version

import (
	"strings"
	"testing"
)

func TestBuildIDFromDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    int
		wantErr bool
	}{
		{name: "first commit day", date: "2025-12-04", want: 0},
		{name: "thirty days in", date: "2026-01-03", want: 30},
		{name: "leap day twenty-eight", date: "2028-02-29", want: 817},
		{name: "garbage date", date: "2025-13-40", wantErr: true},
		{name: "unset date", date: "", wantErr: true},
		{name: "before the first commit", date: "2024-06-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := BuildDate
			defer func() { BuildDate = old }()
			BuildDate = tt.date

			got, err := CalculateBuildID()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CalculateBuildID() = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CalculateBuildID(): %v", err)
			}
			if got != tt.want {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInfoCarriesError(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = ""
	info := Info()
	if info.Calculated || info.Error == "" {
		t.Errorf("Info() with no build date = %+v, want uncalculated with error", info)
	}

	BuildDate = "2025-12-05"
	info = Info()
	if !info.Calculated || info.BuildID != 1 {
		t.Errorf("Info() = %+v, want BuildID 1", info)
	}
	if !strings.Contains(String(), "Build") {
		t.Errorf("String() = %q, want a build banner", String())
	}
}

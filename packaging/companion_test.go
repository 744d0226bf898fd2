package packaging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/speedrun-tools/runpack/packaging/modinfo"
)

func TestDetectMode(t *testing.T) {
	req := DefaultCompanionRequirement()
	tests := []struct {
		name    string
		mods    []modinfo.Descriptor
		want    Mode
		wantErr error
	}{
		{"no mods", nil, ModeStandard, nil},
		{"timer only", []modinfo.Descriptor{{ID: "speedrunigt", Version: "13.3"}}, ModeStandard, nil},
		{
			"companion with current timer",
			[]modinfo.Descriptor{{ID: "seedqueue", Version: "1.2"}, {ID: "speedrunigt", Version: "14.0+1.16.1"}},
			ModeCompanion, nil,
		},
		{
			"companion with newer timer",
			[]modinfo.Descriptor{{ID: "seedqueue", Version: "1.2"}, {ID: "speedrunigt", Version: "14.2+1.16.1"}},
			ModeCompanion, nil,
		},
		{
			"companion with old timer",
			[]modinfo.Descriptor{{ID: "seedqueue", Version: "1.2"}, {ID: "speedrunigt", Version: "13.9+1.16.1"}},
			"", ErrInstrumentationOutdated,
		},
		{
			"companion without timer",
			[]modinfo.Descriptor{{ID: "seedqueue", Version: "1.2"}},
			"", ErrInstrumentationOutdated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectMode(tt.mods, req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

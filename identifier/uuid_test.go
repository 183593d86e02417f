package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUID(t *testing.T) {
	testCases := []struct {
		description string
		id          UUID
		text        string
		v4          bool
	}{
		{
			description: "all ones",
			id:          UUID{255, 255, 255, 255, 255, 255, 0x4F, 255, 0xBF, 255, 255, 255, 255, 255, 255, 255},
			text:        "ffffffff-ffff-4fff-bfff-ffffffffffff",
			v4:          true,
		},
		{
			description: "zero with markers",
			id:          UUID{6: 0x40, 8: 0x80},
			text:        "00000000-0000-4000-8000-000000000000",
			v4:          true,
		},
		{
			description: "nil",
			text:        "00000000-0000-0000-0000-000000000000",
		},
		{
			description: "version 1",
			id:          UUID{6: 0x10, 8: 0x80},
			text:        "00000000-0000-1000-8000-000000000000",
		},
		{
			description: "microsoft variant",
			id:          UUID{6: 0x40, 8: 0xC0},
			text:        "00000000-0000-4000-c000-000000000000",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.text, testCase.id.String())
			assert.Equal(t, testCase.v4, testCase.id.IsV4())
		})
	}
}

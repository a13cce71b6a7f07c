package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDeletion(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		assumeYes bool
		want      bool
	}{
		{
			name:  "typed DELETE confirms",
			input: "DELETE\n",
			want:  true,
		},
		{
			name:  "surrounding whitespace is fine",
			input: "  DELETE  \n",
			want:  true,
		},
		{
			name:  "lowercase does not confirm",
			input: "delete\n",
			want:  false,
		},
		{
			name:  "empty input does not confirm",
			input: "\n",
			want:  false,
		},
		{
			name:  "closed stdin does not confirm",
			input: "",
			want:  false,
		},
		{
			name:      "--yes skips the prompt",
			input:     "",
			assumeYes: true,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirmDeletion(strings.NewReader(tt.input), &out, tt.assumeYes)
			assert.Equal(t, tt.want, got)

			if !tt.assumeYes {
				assert.Contains(t, out.String(), "PERMANENTLY DELETE")
			} else {
				assert.Empty(t, out.String(), "no prompt expected with --yes")
			}
		})
	}
}

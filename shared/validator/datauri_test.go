package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataURIContentType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "data:image/png;base64,iVBORw0KGgo=", want: "image/png"},
		{input: "data:image/webp;base64,UklGRg==", want: "image/webp"},
		{input: "data:;base64,AAAA", want: ""},
		{input: "image/png;base64,iVBORw0KGgo=", want: ""},
		{input: "data:image/png,rawbytes", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, dataURIContentType(tt.input))
		})
	}
}

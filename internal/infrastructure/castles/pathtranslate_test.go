package castles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"backslash drive path", `C:\bots\castles`, "/mnt/c/bots/castles"},
		{"forward slash drive path", "D:/data/castles", "/mnt/d/data/castles"},
		{"uppercase drive is lowered", `X:\a\b`, "/mnt/x/a/b"},
		{"bare drive root", `E:\`, "/mnt/e"},
		{"posix path passes through", "/srv/castles", "/srv/castles"},
		{"relative path passes through", "castles/data", "castles/data"},
		{"empty passes through", "", ""},
		{"unc path passes through", `\\server\share`, `\\server\share`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslatePath(tt.in))
		})
	}
}

package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveModuleName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"my_robot", "MyRobot"},
		{"appropriate-casey", "AppropriateCasey"},
		{"robot", "Robot"},
		{"mixed_snake-kebab", "MixedSnakeKebab"},
		{"keepCamel_case", "KeepCamelCase"},
		{"my__robot", "MyRobot"},
		{"_leading", "Leading"},
		{"v2_bot", "V2Bot"},
		{"3d_bot", "3dBot"},
		{"élan_bot", "ÉlanBot"},
		{"my robot", "My robot"},
		{"bot.v2", "Bot.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveModuleName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveModuleNameInvalid(t *testing.T) {
	for _, name := range []string{"", "_", "-_-", ".", "..", "a/b", `a\b`, "a\x00b"} {
		t.Run(name, func(t *testing.T) {
			_, err := DeriveModuleName(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitWords("a_b-c"))
	assert.Empty(t, SplitWords("__"))
}

package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWordPool(t *testing.T) {
	tests := []struct {
		name    string
		lists   map[Difficulty][]string
		wantErr bool
	}{
		{"ok", map[Difficulty][]string{Easy: {"CAT"}, Hard: {"JOURNEY"}}, false},
		{"normalizes case and space", map[Difficulty][]string{Easy: {" cat ", "Dog"}}, false},
		{"nil", nil, true},
		{"empty list", map[Difficulty][]string{Easy: {}}, true},
		{"short word", map[Difficulty][]string{Easy: {"AT"}}, true},
		{"digit", map[Difficulty][]string{Easy: {"CAT1"}}, true},
		{"hyphen", map[Difficulty][]string{Easy: {"X-RAY"}}, true},
		{"unknown difficulty", map[Difficulty][]string{"nightmare": {"CAT"}}, true},
		{"duplicate after normalizing", map[Difficulty][]string{"easy": {"CAT"}, "EASY": {"DOG"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWordPool(tt.lists)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrConfiguration))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWordPool_CopiesInput(t *testing.T) {
	in := map[Difficulty][]string{Easy: {"cat", "dog"}}
	pool, err := NewWordPool(in)
	require.NoError(t, err)

	in[Easy][0] = "XXX"
	words, err := pool.Words(Easy)
	require.NoError(t, err)
	require.Equal(t, []string{"CAT", "DOG"}, words)

	words[1] = "YYY"
	again, _ := pool.Words(Easy)
	require.Equal(t, []string{"CAT", "DOG"}, again)
}

func TestWordPool_Queries(t *testing.T) {
	pool := testPool(t)
	require.True(t, pool.Has(Medium))
	require.True(t, pool.Contains(Hard, "JOURNEY"))
	require.False(t, pool.Contains(Easy, "JOURNEY"))
	require.Equal(t, []Difficulty{Easy, Medium, Hard}, pool.Difficulties())
	require.Equal(t, map[Difficulty]int{Easy: 4, Medium: 3, Hard: 3}, pool.Stats())
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{"easy": Easy, " MEDIUM ": Medium, "Hard": Hard} {
		got, ok := ParseDifficulty(in)
		require.True(t, ok, in)
		require.Equal(t, want, got)
	}
	_, ok := ParseDifficulty("expert")
	require.False(t, ok)
}

func TestCryptoPicker_InRange(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := CryptoPicker{}.Pick(4)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 4)
		seen[n] = true
	}
	require.Len(t, seen, 4)
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Difficulty: Hard, Reason: "no word pool"}
	require.Equal(t, `game: configuration error: difficulty "hard": no word pool`, err.Error())
	require.Equal(t, "game: configuration error: word pool is empty", (&ConfigError{Reason: "word pool is empty"}).Error())
}

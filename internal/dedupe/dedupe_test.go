package dedupe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRadixBackend(t *testing.T) {
	r := NewRadixBackend()
	r.Upsert("github", "GitHub")
	r.Upsert("aaron", "Aaron")
	r.Upsert("github", "Github")
	r.Upsert("boston", "Boston")

	require.Equal(t, 3, r.Len())
	require.True(t, r.Has("github"))
	require.False(t, r.Has("GitHub"), "keys are matched verbatim")

	var got []string
	r.IterCallback(func(elem string) {
		got = append(got, elem)
	})
	require.Equal(t, []string{"Aaron", "Boston", "GitHub"}, got, "first spelling wins and keys are ordered")

	r.Cleanup()
	require.Equal(t, 0, r.Len())
}

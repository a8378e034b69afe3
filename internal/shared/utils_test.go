package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandBytes_Basic(t *testing.T) {
	const n = 24
	buf, err := RandBytes(n)
	require.NoError(t, err)
	require.Len(t, buf, n)
}

func TestRandBytes_ZeroSize(t *testing.T) {
	buf, err := RandBytes(0)
	require.NoError(t, err)
	assert.Empty(t, buf)
}

func TestRandBytes_EntropyHint(t *testing.T) {
	const n = 32
	a, err := RandBytes(n)
	require.NoError(t, err)
	b, err := RandBytes(n)
	require.NoError(t, err)

	// identical outputs are astronomically unlikely
	assert.NotEqual(t, a, b)
}

func TestWipeBytes_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeBytes(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeBytes_NilSafe(t *testing.T) {
	WipeBytes(nil)
}

func TestCopyBytes_Independent(t *testing.T) {
	orig := []byte{10, 20, 30}
	cp := CopyBytes(orig)
	require.Equal(t, orig, cp)

	WipeBytes(orig)
	assert.Equal(t, []byte{10, 20, 30}, cp)
}

func TestCopyBytes_Nil(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
}

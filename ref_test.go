package sfv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRefRoundTrip(t *testing.T) {
	r, err := NewStringRef([]byte(`hi "there"`))
	require.NoError(t, err)
	got, err := r.EncodeRef()
	require.NoError(t, err)
	assert.Equal(t, `"hi \"there\""`, got)

	_, err = NewStringRef([]byte("bad\nbyte"))
	require.Error(t, err)
}

func TestUncheckedStringRefFailsAtEncodeTime(t *testing.T) {
	r := UncheckedStringRef([]byte("bad\nbyte"))
	_, err := r.EncodeRef()
	require.Error(t, err)
	var se *SerializeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, InvalidCharacter, se.Kind)
}

func TestTokenRefRoundTrip(t *testing.T) {
	r, err := NewTokenRef([]byte("foo123/456"))
	require.NoError(t, err)
	got, err := r.EncodeRef()
	require.NoError(t, err)
	assert.Equal(t, "foo123/456", got)

	_, err = NewTokenRef([]byte("1bad"))
	require.Error(t, err)
}

func TestUncheckedTokenRefFailsAtEncodeTime(t *testing.T) {
	r := UncheckedTokenRef([]byte("1bad"))
	_, err := r.EncodeRef()
	require.Error(t, err)
}

func TestKeyRefRoundTrip(t *testing.T) {
	r, err := NewKeyRef([]byte("valid-key"))
	require.NoError(t, err)
	got, err := r.EncodeRef()
	require.NoError(t, err)
	assert.Equal(t, "valid-key", got)

	_, err = NewKeyRef([]byte("Uppercase"))
	require.Error(t, err)
}

func TestByteSequenceRefNeverFailsToConstruct(t *testing.T) {
	r := NewByteSequenceRef([]byte("pleasure."))
	got, err := r.EncodeRef()
	require.NoError(t, err)
	assert.Equal(t, ":cGxlYXN1cmUu:", got)
}

func TestDisplayStringRefRoundTrip(t *testing.T) {
	r, err := NewDisplayStringRef([]byte("café"))
	require.NoError(t, err)
	got, err := r.EncodeRef()
	require.NoError(t, err)
	assert.Equal(t, `%"caf%c3%a9"`, got)

	_, err = NewDisplayStringRef([]byte{0xFF})
	require.Error(t, err)
}

func TestUncheckedDisplayStringRefFailsAtEncodeTime(t *testing.T) {
	r := UncheckedDisplayStringRef([]byte{0xFF})
	_, err := r.EncodeRef()
	require.Error(t, err)
	var se *SerializeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, InvalidUtf8, se.Kind)
}

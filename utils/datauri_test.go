package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJPEGDataURI(t *testing.T) {
	data := []byte{0xff, 0xd8, 0xff, 0xe0}
	uri := JPEGDataURI(data)

	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/jpeg;base64,abc"))
	assert.False(t, IsDataURI("https://placehold.co/100x100"))
	assert.False(t, IsDataURI(""))
}

package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToHumanReadable(t *testing.T) {
	testCases := []struct {
		Bytes    uint64
		Expected string
	}{
		{0, "0b"},
		{999, "999b"},
		{1000, "1kb"},
		{1999, "1kb"},
		{1_000_000, "1mb"},
		{1_500_000_000, "1gb"},
		{999_999_999_999, "999gb"},
		{2_000_000_000_000, "2tb"},
		{5_000_000_000_000_000, "5000tb"},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.Expected, BytesToHumanReadable(testCase.Bytes), "%d bytes", testCase.Bytes)
	}
}

func TestPathToRelative(t *testing.T) {
	assert.Equal(t, "./sub/file.txt", PathToRelative("/data/sub/file.txt", "/data"))
	assert.Equal(t, "./sub/file.txt", PathToRelative(`C:\data\sub\file.txt`, `C:\data`))
	assert.Equal(t, "./file", PathToRelative("/data/file", "/data/"))
	assert.Equal(t, "./elsewhere/file", PathToRelative("/elsewhere/file", "/data"))
	assert.Equal(t, "./", PathToRelative("/data", "/data"))
}

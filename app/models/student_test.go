package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactInfoRoundTrip(t *testing.T) {
	info := ContactInfo{
		"phone":       "+91 98100 11001",
		"email":       "aarav.sharma@example.com",
		"parent_name": "Rohit Sharma",
	}

	value, err := info.Value()
	require.NoError(t, err)

	var decoded ContactInfo
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, info, decoded)
}

func TestContactInfoNilValue(t *testing.T) {
	var info ContactInfo

	value, err := info.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), value)
}

func TestContactInfoScanNull(t *testing.T) {
	var info ContactInfo
	require.NoError(t, info.Scan(nil))
	assert.Empty(t, info)
}

func TestContactInfoScanRejectsUnknownType(t *testing.T) {
	var info ContactInfo
	assert.Error(t, info.Scan(42))
}

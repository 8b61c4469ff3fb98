// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalBandwidth(t *testing.T) {
	testCases := []struct {
		raw      string
		bwType   string
		value    uint32
		isCustom bool
	}{
		{"AS:128", "AS", 128, false},
		{"CT:2048", "CT", 2048, false},
		{"TIAS:65000", "TIAS", 65000, false},
		{"X-YZ:128", "X-YZ", 128, true},
		{"FOO:12", "FOO", 12, true},
	}

	for i, testCase := range testCases {
		bandwidth, err := UnmarshalBandwidth(testCase.raw)
		assert.NoError(t, err, "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.bwType, bandwidth.Type(), "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.value, bandwidth.Value(), "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.isCustom, bandwidth.IsCustom(), "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.raw, bandwidth.String(), "testCase: %d %v", i, testCase)
	}
}

func TestUnmarshalBandwidthFailures(t *testing.T) {
	testCases := []struct {
		raw         string
		expectedErr error
	}{
		{"AS", ErrBandwidthSyntax},
		{"128", ErrBandwidthSyntax},
		{"AS:", ErrBandwidthValue},
		{"AS:notint", ErrBandwidthValue},
		{"AS:-128", ErrBandwidthValue},
		{"AS:4294967296", ErrBandwidthValue},
		{":128", ErrBandwidthTypeEmpty},
		{"ABC/DEF:12", ErrBandwidthTypeInvalid},
		{"X-:12", ErrBandwidthTypeInvalid},
		{"X Y:12", ErrBandwidthTypeInvalid},
	}

	for i, testCase := range testCases {
		_, err := UnmarshalBandwidth(testCase.raw)
		assert.ErrorIs(t, err, testCase.expectedErr, "testCase: %d %v", i, testCase)
	}
}

func TestNewCustomBandwidth(t *testing.T) {
	bandwidth, err := NewCustomBandwidth("X-YZ", 128)
	assert.NoError(t, err)
	assert.Equal(t, "X-YZ:128", bandwidth.String())
	assert.True(t, bandwidth.IsCustom())

	_, err = NewCustomBandwidth("", 128)
	assert.ErrorIs(t, err, ErrBandwidthTypeEmpty)

	_, err = NewCustomBandwidth("b w", 128)
	assert.ErrorIs(t, err, ErrBandwidthTypeInvalid)
}

func TestBandwidthConstructors(t *testing.T) {
	assert.Equal(t, "AS:4", NewBandwidthAS(4).String())
	assert.Equal(t, "CT:154798", NewBandwidthCT(154798).String())
	assert.Equal(t, "TIAS:64000", NewBandwidthTIAS(64000).String())
	assert.False(t, NewBandwidthAS(4).IsCustom())
}

// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalAttribute(t *testing.T) {
	testCases := []struct {
		line     string
		expected Attribute
	}{
		{"a=recvonly\r\n", Attribute{Key: "recvonly"}},
		{"a=extmap:1 http://example.com/082005/ext.htm#ttime\r\n", Attribute{
			Key:   "extmap",
			Value: "1 http://example.com/082005/ext.htm#ttime",
		}},
		{"a=fmtp:96 profile-level-id=42e01f\r\n", Attribute{
			Key:   "fmtp",
			Value: "96 profile-level-id=42e01f",
		}},
	}

	for i, testCase := range testCases {
		attr, err := UnmarshalAttribute(testCase.line)
		assert.NoError(t, err, "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.expected, attr, "testCase: %d %v", i, testCase)
		assert.Equal(t, testCase.line, attr.Marshal(), "testCase: %d %v", i, testCase)
	}
}

func TestUnmarshalAttributeErrors(t *testing.T) {
	testCases := []struct {
		line        string
		expectedErr error
	}{
		{"b=AS:128\r\n", ErrMissingAttributePrefix},
		{"recvonly\r\n", ErrMissingAttributePrefix},
		{"a=recvonly", ErrMissingLineTerminator},
		{"a=recvonly\n", ErrMissingLineTerminator},
		{"a=recvonly\r", ErrMissingLineTerminator},
		{"a=\r\n", ErrEmptyAttributeKey},
		{"a=:value\r\n", ErrEmptyAttributeKey},
		{"a=key:\r\n", ErrEmptyAttributeValue},
		{"a=extmap:\r\n", ErrEmptyAttributeValue},
	}

	for i, testCase := range testCases {
		_, err := UnmarshalAttribute(testCase.line)
		assert.ErrorIs(t, err, testCase.expectedErr, "testCase: %d %v", i, testCase)
	}
}

func TestAttributeMarshal(t *testing.T) {
	assert.Equal(t, "a=sendonly\r\n", NewPropertyAttribute("sendonly").Marshal())
	assert.Equal(t, "a=mid:audio\r\n", NewAttribute("mid", "audio").Marshal())
	assert.Equal(t, "mid:audio", NewAttribute("mid", "audio").String())
	assert.Equal(t, "sendonly", NewPropertyAttribute("sendonly").String())
}

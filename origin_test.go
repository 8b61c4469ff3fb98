// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUsername(t *testing.T) {
	username, err := NewUsername("jdoe")
	assert.NoError(t, err)
	assert.Equal(t, "jdoe", username.String())
}

func TestNewUsernameFailures(t *testing.T) {
	testCases := []struct {
		raw         string
		expectedErr error
	}{
		{"", ErrUsernameEmpty},
		{"-", ErrUsernameHyphen},
		{"a b", ErrUsernameContainsSpaces},
	}

	for i, testCase := range testCases {
		_, err := NewUsername(testCase.raw)
		assert.ErrorIs(t, err, testCase.expectedErr, "testCase: %d %v", i, testCase)

		// Each violated rule is a distinct sentinel.
		for j, other := range testCases {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, err, other.expectedErr, "testCase: %d vs %d", i, j)
		}
	}
}

func TestOrigin_String(t *testing.T) {
	addr, err := NewIPAddress(netip.MustParseAddr("10.47.16.5"))
	assert.NoError(t, err)

	username, err := NewUsername("jdoe")
	assert.NoError(t, err)

	origin := Origin{
		Username:       &username,
		SessionID:      2890844526,
		SessionVersion: 2890842807,
		UnicastAddress: addr,
	}
	assert.Equal(t, "jdoe 2890844526 2890842807 IN IP4 10.47.16.5", origin.String())

	origin.Username = nil
	assert.Equal(t, "- 2890844526 2890842807 IN IP4 10.47.16.5", origin.String())
}

func TestNewOrigin(t *testing.T) {
	addr, err := NewIPAddress(netip.MustParseAddr("203.0.113.7"))
	assert.NoError(t, err)

	origin, err := NewOrigin(addr)
	assert.NoError(t, err)
	assert.Nil(t, origin.Username)
	assert.Less(t, origin.SessionID, uint64(1)<<63)
	assert.GreaterOrEqual(t, origin.SessionVersion, uint64(ntpEpochOffset))
	assert.Equal(t, "IN IP4 203.0.113.7", origin.UnicastAddress.String())
}

func TestSessionVersionOrdering(t *testing.T) {
	addr, err := NewIPAddress(netip.MustParseAddr("10.0.0.1"))
	assert.NoError(t, err)

	initial := Origin{SessionID: 1, SessionVersion: 2890842807, UnicastAddress: addr}
	updated := initial
	updated.SessionVersion++

	assert.Greater(t, updated.SessionVersion, initial.SessionVersion)
}

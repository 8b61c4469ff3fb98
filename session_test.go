// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionName(t *testing.T) {
	name, err := NewSessionName("SDP Seminar")
	assert.NoError(t, err)
	assert.Equal(t, "SDP Seminar", name.String())

	_, err = NewSessionName("")
	assert.ErrorIs(t, err, ErrSessionNameEmpty)

	assert.Equal(t, " ", DefaultSessionName().String())
}

func TestInformation(t *testing.T) {
	info, err := NewInformation("A Seminar on the session description protocol")
	assert.NoError(t, err)
	assert.Equal(t, "A Seminar on the session description protocol", info.String())

	_, err = NewInformation("")
	assert.ErrorIs(t, err, ErrInformationEmpty)
}

func TestEmailAddress(t *testing.T) {
	email, err := NewEmailAddress("j.doe@example.com (Jane Doe)")
	assert.NoError(t, err)
	assert.Equal(t, "j.doe@example.com (Jane Doe)", email.String())

	_, err = NewEmailAddress("")
	assert.ErrorIs(t, err, ErrEmailAddressEmpty)
}

func TestPhoneNumber(t *testing.T) {
	phone, err := NewPhoneNumber("+1 617 555-6011")
	assert.NoError(t, err)
	assert.Equal(t, "+1 617 555-6011", phone.String())

	_, err = NewPhoneNumber("")
	assert.ErrorIs(t, err, ErrPhoneNumberEmpty)
}

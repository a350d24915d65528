// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/fixtures"
	"github.com/bitmark-inc/weddingd/record"
)

func TestDiscriminatorsDiffer(t *testing.T) {
	assert.NotEqual(t, record.PartnerDiscriminator, record.WeddingDiscriminator, "discriminators collide")
}

func TestPartnerPack(t *testing.T) {
	p := &record.Partner{
		Wedding: address.Address{1, 2, 3},
		User:    fixtures.Alice.Account,
		Name:    "Alice",
		Vows:    "to have and to hold",
		Answer:  true,
	}

	packed, err := p.Pack()
	require.Nil(t, err, "pack")
	assert.Equal(t, p.Space(), len(packed), "wrong space")
	assert.Equal(t, record.PartnerDiscriminator[:], packed[:record.DiscriminatorLength], "wrong discriminator")
	assert.Equal(t, byte(1), packed[len(packed)-1], "wrong answer byte")

	// allocated space may be followed by zero padding
	padded := append(packed, 0, 0, 0)
	u, err := record.UnpackPartner(padded)
	require.Nil(t, err, "unpack")
	assert.Equal(t, p.Wedding, u.Wedding, "wrong wedding")
	assert.True(t, p.User.Equal(u.User), "wrong user")
	assert.Equal(t, p.Name, u.Name, "wrong name")
	assert.Equal(t, p.Vows, u.Vows, "wrong vows")
	assert.True(t, u.Answer, "wrong answer")
}

func TestPartnerBounds(t *testing.T) {
	tests := []struct {
		name string
		vows string
		err  error
	}{
		{"", "", fault.ErrNameTooShort},
		{"A", "", nil},
		{strings.Repeat("n", record.MaxNameLength), "", nil},
		{strings.Repeat("n", record.MaxNameLength+1), "", fault.ErrNameTooLong},
		{"Bob", strings.Repeat("v", record.MaxVowsLength), nil},
		{"Bob", strings.Repeat("v", record.MaxVowsLength+1), fault.ErrVowsTooLong},
		{"Bob", "\xff\xfe", fault.ErrInvalidText},
	}

	for i, item := range tests {
		p := &record.Partner{User: fixtures.Bob.Account, Name: item.name, Vows: item.vows}
		_, err := p.Pack()
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestUnpackPartnerErrors(t *testing.T) {
	p := &record.Partner{User: fixtures.Alice.Account, Name: "Alice"}
	packed, err := p.Pack()
	require.Nil(t, err, "pack")

	_, err = record.UnpackPartner(packed[:4])
	assert.Equal(t, fault.ErrRecordTruncated, err, "short discriminator")

	_, err = record.UnpackPartner(packed[:len(packed)-1])
	assert.Equal(t, fault.ErrRecordTruncated, err, "missing answer")

	w, _ := record.NewWedding(fixtures.Carol.Account, address.Address{1}, address.Address{2}).Pack()
	_, err = record.UnpackPartner(w)
	assert.Equal(t, fault.ErrWrongRecordType, err, "wedding unpacked as partner")

	bad := append([]byte{}, packed...)
	bad[len(bad)-1] = 7
	_, err = record.UnpackPartner(bad)
	assert.Equal(t, fault.ErrInvalidAnswer, err, "wrong answer byte accepted")
}

func TestWeddingPack(t *testing.T) {
	high := address.Address{0xff}
	low := address.Address{0x01}

	w := record.NewWedding(fixtures.Carol.Account, high, low)
	assert.Equal(t, low, w.Partner0, "partner0 not lowest")
	assert.Equal(t, high, w.Partner1, "partner1 not highest")
	assert.Equal(t, record.Created, w.Status, "wrong initial status")
	assert.True(t, w.HasPartner(low), "low not a partner")
	assert.False(t, w.HasPartner(address.Address{0x02}), "stranger is a partner")

	w.Status = record.Divorcing
	packed, err := w.Pack()
	require.Nil(t, err, "pack")
	assert.Equal(t, record.WeddingSpace, len(packed), "wrong space")

	u, err := record.UnpackWedding(packed)
	require.Nil(t, err, "unpack")
	assert.True(t, w.Creator.Equal(u.Creator), "wrong creator")
	assert.Equal(t, w.Partner0, u.Partner0, "wrong partner0")
	assert.Equal(t, w.Partner1, u.Partner1, "wrong partner1")
	assert.Equal(t, record.Divorcing, u.Status, "wrong status")

	packed[record.WeddingSpace-2] = 9
	_, err = record.UnpackWedding(packed)
	assert.Equal(t, fault.ErrInvalidStatus, err, "unknown status accepted")

	_, err = record.UnpackWedding(packed[:40])
	assert.Equal(t, fault.ErrRecordTruncated, err, "truncated record accepted")
}

func TestStatusText(t *testing.T) {
	names := []string{"created", "marrying", "married", "divorcing", "divorced"}
	for i, name := range names {
		s := record.Status(i)
		assert.Equal(t, name, s.String(), "wrong name")

		buffer, err := json.Marshal(s)
		require.Nil(t, err, "marshal")
		assert.Equal(t, `"`+name+`"`, string(buffer), "wrong json")

		var u record.Status
		err = json.Unmarshal(buffer, &u)
		require.Nil(t, err, "unmarshal")
		assert.Equal(t, s, u, "wrong round trip")
	}
	assert.False(t, record.Status(5).Valid(), "status 5 is valid")

	var u record.Status
	err := u.UnmarshalText([]byte("eloped"))
	assert.Equal(t, fault.ErrInvalidStatus, err, "wrong error")
}

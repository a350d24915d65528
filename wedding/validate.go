// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wedding

import (
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/ledger"
	"github.com/bitmark-inc/weddingd/record"
)

// a partner slot is free only with no stored bytes and no deposit
func validatePartnerSlot(e *ledger.Entry) error {
	if 0 != len(e.Data) {
		return fault.PartnerDataNotEmpty
	}
	if 0 != e.Lamports {
		return fault.PartnerBalanceNotZero
	}
	return nil
}

func isInitialized(e *ledger.Entry) bool {
	return 0 != len(e.Data) || 0 != e.Lamports
}

func loadPartner(c *ledger.Context, a address.Address) (*record.Partner, error) {
	e := c.Load(a)
	if 0 == len(e.Data) || e.Owner != c.Program() {
		return nil, fault.ErrRecordNotFound
	}
	return record.UnpackPartner(e.Data)
}

func loadWedding(c *ledger.Context, a address.Address) (*record.Wedding, error) {
	e := c.Load(a)
	if 0 == len(e.Data) || e.Owner != c.Program() {
		return nil, fault.ErrRecordNotFound
	}
	return record.UnpackWedding(e.Data)
}

func storePartner(c *ledger.Context, a address.Address, p *record.Partner) error {
	data, err := p.Pack()
	if nil != err {
		return err
	}
	return c.Write(a, data)
}

func storeWedding(c *ledger.Context, a address.Address, w *record.Wedding) error {
	data, err := w.Pack()
	if nil != err {
		return err
	}
	return c.Write(a, data)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wedding

import (
	"github.com/bitmark-inc/weddingd/account"
	"github.com/bitmark-inc/weddingd/address"
	"github.com/bitmark-inc/weddingd/record"
)

// capability predicates: pure functions of the caller and loaded records

// either partner or the creator, even when the creator is not a partner
func canCancel(caller *account.Account, callerPartner address.Address, w *record.Wedding) bool {
	return w.HasPartner(callerPartner) || w.Creator.Equal(caller)
}

// the refund target must be the identity that funded the wedding
func isCreator(refund *account.Account, w *record.Wedding) bool {
	return w.Creator.Equal(refund)
}

func partnerOfWedding(p *record.Partner, wedding address.Address) bool {
	return p.Wedding == wedding
}

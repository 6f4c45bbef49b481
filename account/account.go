// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - opaque holder identifiers
//
// an account is a short byte string with no further structure
// its text form is base58 and its storage form is the raw bytes
// prefixed by a one byte length
package account

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/clonemarkd/fault"
)

// MaximumLength - longest raw account identifier
const MaximumLength = 64

// Account - holder, caller or beneficiary identity
//
// comparable, so it can be used directly as a map key
type Account struct {
	id string
}

// FromBytes - create an account from its raw bytes
func FromBytes(b []byte) (Account, error) {
	if 0 == len(b) || len(b) > MaximumLength {
		return Account{}, fault.InvalidAccount
	}
	return Account{id: string(b)}, nil
}

// FromBase58 - create an account from its text form
func FromBase58(s string) (Account, error) {
	if "" == s {
		return Account{}, fault.InvalidAccount
	}
	b, err := base58.Decode(s)
	if nil != err {
		return Account{}, fault.InvalidAccount
	}
	return FromBytes(b)
}

// IsZero - true for the empty account
func (account Account) IsZero() bool {
	return "" == account.id
}

// Bytes - raw identifier bytes
func (account Account) Bytes() []byte {
	return []byte(account.id)
}

// Pack - length prefixed form used in storage keys
func (account Account) Pack() []byte {
	packed := make([]byte, 1, 1+len(account.id))
	packed[0] = byte(len(account.id))
	return append(packed, account.id...)
}

// Unpack - recover an account from the front of a packed buffer
//
// returns the account and the number of bytes consumed
func Unpack(buffer []byte) (Account, int, error) {
	if 0 == len(buffer) {
		return Account{}, 0, fault.InvalidAccount
	}
	n := int(buffer[0])
	if len(buffer) < 1+n {
		return Account{}, 0, fault.WrongRecordLength
	}
	a, err := FromBytes(buffer[1 : 1+n])
	if nil != err {
		return Account{}, 0, err
	}
	return a, 1 + n, nil
}

// String - base58 text form
func (account Account) String() string {
	return base58.Encode([]byte(account.id))
}

// MarshalText - base58 for JSON
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - from base58
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

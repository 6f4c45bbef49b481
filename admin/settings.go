// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

// MaximumFeePercentage - the whole payment
const MaximumFeePercentage = 100

var (
	feePercentageKey = []byte("fee-percentage")
	mintEnabledKey   = []byte("mint-enabled")
)

// Defaults - values used until an administrator changes them
type Defaults struct {
	FeePercentage uint64
	MintEnabled   bool
}

// Snapshot - settings at one moment
type Snapshot struct {
	FeePercentage uint64 `json:"feePercentage,string"`
	MintEnabled   bool   `json:"mintEnabled"`
}

// Settings - persisted administrative settings
type Settings struct {
	log      *logger.L
	pool     storage.Handle
	defaults Defaults
}

// NewSettings - settings over a pool
func NewSettings(log *logger.L, pool storage.Handle, defaults Defaults) (*Settings, error) {
	if defaults.FeePercentage > MaximumFeePercentage {
		return nil, fault.InvalidRange
	}
	return &Settings{
		log:      log,
		pool:     pool,
		defaults: defaults,
	}, nil
}

func (s *Settings) get(trx storage.Transaction, key []byte) (uint64, bool) {
	if nil == trx {
		return s.pool.GetN(key)
	}
	return trx.GetN(s.pool, key)
}

// FeePercentage - current fee percentage
func (s *Settings) FeePercentage(trx storage.Transaction) uint64 {
	n, found := s.get(trx, feePercentageKey)
	if !found {
		return s.defaults.FeePercentage
	}
	return n
}

// MintEnabled - whether minting and cloning are allowed
func (s *Settings) MintEnabled(trx storage.Transaction) bool {
	n, found := s.get(trx, mintEnabledKey)
	if !found {
		return s.defaults.MintEnabled
	}
	return 0 != n
}

// Snapshot - both settings together
func (s *Settings) Snapshot(trx storage.Transaction) Snapshot {
	return Snapshot{
		FeePercentage: s.FeePercentage(trx),
		MintEnabled:   s.MintEnabled(trx),
	}
}

// SetFeePercentage - stage a new fee percentage
func (s *Settings) SetFeePercentage(trx storage.Transaction, percentage uint64) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}
	if percentage > MaximumFeePercentage {
		return fault.InvalidRange
	}
	trx.PutN(s.pool, feePercentageKey, percentage)
	s.log.Infof("fee percentage: %d", percentage)
	return nil
}

// SetMintEnabled - stage the mint flag
func (s *Settings) SetMintEnabled(trx storage.Transaction, enabled bool) error {
	if nil == trx {
		return fault.TransactionNotStarted
	}
	n := uint64(0)
	if enabled {
		n = 1
	}
	trx.PutN(s.pool, mintEnabledKey, n)
	s.log.Infof("mint enabled: %t", enabled)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/clonemarkd/metadata"
	"github.com/bitmark-inc/clonemarkd/metrics"
	"github.com/bitmark-inc/clonemarkd/ownership"
	"github.com/bitmark-inc/clonemarkd/payment"
	"github.com/bitmark-inc/clonemarkd/record"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

// operation names for logging and metrics
const (
	opMint             = "mint"
	opClone            = "clone"
	opRetire           = "retire"
	opSetFeePercentage = "set-fee-percentage"
	opSetMintEnabled   = "set-mint-enabled"
	opSetPrice         = "set-price"
	opSetMetadataURI   = "set-metadata-uri"
)

// Dependencies - collaborators of the registry
//
// Metrics may be nil
type Dependencies struct {
	Records     record.Store
	Settings    *admin.Settings
	Gate        admin.Gate
	Holders     ownership.Registry
	Metadata    metadata.Store
	Sender      payment.Sender
	Balances    payment.Balances
	Beneficiary account.Account
	Metrics     *metrics.Metrics
}

//go:generate mockgen -destination=../rpc/mocks/registry.go -package=mocks github.com/bitmark-inc/clonemarkd/registry Registry

// Registry - the public surface over all item state
type Registry interface {
	Mint(account.Account, account.Account, uint64, uint64, string) (uint64, error)
	Clone(account.Account, account.Account, uint64, uint64, uint64) (*CloneResult, error)
	Retire(account.Account, uint64) error

	SetFeePercentage(account.Account, uint64) error
	SetMintEnabled(account.Account, bool) error
	SetPrice(account.Account, uint64, uint64) error
	SetMetadataURI(account.Account, uint64, string) error

	GetItem(uint64) record.Item
	GetCloneCount(uint64) uint64
	GetLatestId() uint64
	HolderOf(uint64) account.Account
	URI(uint64) string
	BalanceOf(account.Account) uint64
	CountHeldBy(account.Account) uint64
	ListHeldBy(account.Account, uint64, int) ([]uint64, error)
	Settings() admin.Snapshot
}

type registry struct {
	sync.Mutex

	log         *logger.L
	records     record.Store
	settings    *admin.Settings
	gate        admin.Gate
	holders     ownership.Registry
	metadata    metadata.Store
	sender      payment.Sender
	balances    payment.Balances
	beneficiary account.Account
	metrics     *metrics.Metrics
}

// New - create a registry
func New(log *logger.L, deps Dependencies) (Registry, error) {
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	if nil == deps.Records || nil == deps.Settings || nil == deps.Gate ||
		nil == deps.Holders || nil == deps.Metadata || nil == deps.Sender ||
		nil == deps.Balances {
		return nil, fault.MissingParameters
	}
	if deps.Beneficiary.IsZero() {
		return nil, fault.InvalidBeneficiary
	}

	return &registry{
		log:         log,
		records:     deps.Records,
		settings:    deps.Settings,
		gate:        deps.Gate,
		holders:     deps.Holders,
		metadata:    deps.Metadata,
		sender:      deps.Sender,
		balances:    deps.Balances,
		beneficiary: deps.Beneficiary,
		metrics:     deps.Metrics,
	}, nil
}

// run f inside a transaction, committing only if f succeeds
func (r *registry) update(operation string, f func(storage.Transaction) error) error {
	r.Lock()
	defer r.Unlock()

	err := r.transact(f)
	if nil != err {
		r.log.Warnf("%s: rejected: %s", operation, err)
	}
	if nil != r.metrics {
		r.metrics.Observe(operation, err)
	}
	return err
}

func (r *registry) transact(f func(storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		r.log.Criticalf("commit error: %s", err)
	}
	return err
}

func (r *registry) authorize(caller account.Account) error {
	if !r.gate.IsAuthorized(caller) {
		return fault.Unauthorized
	}
	return nil
}

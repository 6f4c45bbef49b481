// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/clonemarkd/admin"
	"github.com/bitmark-inc/clonemarkd/background"
	"github.com/bitmark-inc/clonemarkd/metadata"
	"github.com/bitmark-inc/clonemarkd/metrics"
	"github.com/bitmark-inc/clonemarkd/ownership"
	"github.com/bitmark-inc/clonemarkd/payment"
	"github.com/bitmark-inc/clonemarkd/record"
	"github.com/bitmark-inc/clonemarkd/registry"
	"github.com/bitmark-inc/clonemarkd/storage"
	"github.com/bitmark-inc/logger"
)

// everything built on top of the storage pools
type components struct {
	registry registry.Registry
	records  record.Store
	holders  ownership.Registry
	ledger   *payment.Ledger
	metrics  *metrics.Metrics
	gate     admin.Gate

	// non-nil only when an administrators file is configured
	listGate *admin.ListGate
	watcher  *admin.Watcher
}

// storage must already be initialised
func setupComponents(log *logger.L, options *Configuration) (*components, error) {

	settings, err := admin.NewSettings(log, storage.Pool.Settings, admin.Defaults{
		FeePercentage: options.Registry.FeePercentage,
		MintEnabled:   options.Registry.MintEnabled,
	})
	if nil != err {
		return nil, err
	}

	c := &components{
		records: record.New(log, storage.Pool.Items, storage.Pool.Settings),
		holders: ownership.New(log, ownership.Pools{
			Holders:     storage.Pool.Holders,
			HolderList:  storage.Pool.HolderList,
			HolderCount: storage.Pool.HolderCount,
			Settings:    storage.Pool.Settings,
		}),
		ledger:  payment.NewLedger(log, storage.Pool.Balances, storage.Pool.Settings),
		metrics: metrics.New(),
	}

	// a single fixed administrator needs no list
	if 1 == len(options.administrators) && "" == options.Registry.AdministratorsFile {
		c.gate, err = admin.NewSingleGate(options.administrators[0])
	} else {
		c.listGate, err = admin.NewListGate(log, options.administrators, options.Registry.AdministratorsFile)
		c.gate = c.listGate
	}
	if nil != err {
		return nil, err
	}

	c.registry, err = registry.New(log, registry.Dependencies{
		Records:     c.records,
		Settings:    settings,
		Gate:        c.gate,
		Holders:     c.holders,
		Metadata:    metadata.New(log, storage.Pool.Metadata),
		Sender:      c.ledger,
		Balances:    c.ledger,
		Beneficiary: options.beneficiary,
		Metrics:     c.metrics,
	})
	if nil != err {
		return nil, err
	}

	err = c.registerGauges()
	if nil != err {
		return nil, err
	}
	return c, nil
}

func (c *components) registerGauges() error {
	gauges := []struct {
		name string
		help string
		f    func() float64
	}{
		{"latest_id", "highest item id issued", func() float64 { return float64(c.records.LatestId(nil)) }},
		{"items_held", "items currently assigned to a holder", func() float64 { return float64(c.holders.TotalAssigned(nil)) }},
		{"credited", "base payment units credited to all accounts", func() float64 { return float64(c.ledger.TotalPaid()) }},
	}
	for _, g := range gauges {
		if err := c.metrics.Gauge(g.name, g.help, g.f); nil != err {
			return err
		}
	}
	return nil
}

// background tasks: administrators file watcher and metrics listener
func (c *components) processes(log *logger.L, options *Configuration) (background.Processes, error) {
	processes := background.Processes{}

	if nil != c.listGate && "" != c.listGate.FileName() {
		w, err := admin.NewWatcher(logger.New("watcher"), c.listGate)
		if nil != err {
			return nil, err
		}
		c.watcher = w
		processes = append(processes, w)
	}

	if "" != options.Metrics.Listen {
		s, err := metrics.NewServer(logger.New("metrics"), options.Metrics.Listen, c.metrics)
		if nil != err {
			if nil != c.watcher {
				c.watcher.Close()
			}
			return nil, err
		}
		log.Infof("metrics listening on: %s", s.Addr())
		processes = append(processes, s)
	} else {
		log.Info("metrics disabled")
	}

	return processes, nil
}

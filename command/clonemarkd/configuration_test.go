// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clonemarkd/fixtures"
)

const configTemplate = `
local M = {}

M.data_directory = "."
M.pidfile = "clonemarkd.pid"

M.registry = {
    beneficiary = "%s",
    fee_percentage = %d,
    mint_enabled = false,
    administrators = { %s },
    administrators_file = "%s",
}

M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}

M.metrics = {
    listen = arg["metrics"] or "",
}

return M
`

func writeConfiguration(t *testing.T, beneficiary string, fee int, administrators string, file string) string {
	dir := t.TempDir()
	name := filepath.Join(dir, "clonemarkd.conf")
	text := fmt.Sprintf(configTemplate, beneficiary, fee, administrators, file)
	if err := ioutil.WriteFile(name, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return name
}

func TestGetConfiguration(t *testing.T) {
	name := writeConfiguration(t, fixtures.Beneficiary.String(), 25, `"`+fixtures.Administrator.String()+`"`, "admins.txt")
	dir := filepath.Dir(name)

	c, err := getConfiguration(name, map[string]string{"metrics": "127.0.0.1:9100"})
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "clonemarkd.pid"), c.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "data", defaultDatabase), c.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "admins.txt"), c.Registry.AdministratorsFile, "wrong administrators file")
	assert.Equal(t, uint64(5), c.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, uint64(25), c.Registry.FeePercentage, "wrong fee")
	assert.False(t, c.Registry.MintEnabled, "wrong mint flag")
	assert.Equal(t, "127.0.0.1:9100", c.Metrics.Listen, "wrong metrics listen")
	assert.Equal(t, fixtures.Beneficiary, c.beneficiary, "wrong beneficiary")
	assert.Equal(t, 1, len(c.administrators), "wrong administrator count")
	assert.Equal(t, fixtures.Administrator, c.administrators[0], "wrong administrator")
}

func TestGetConfigurationErrors(t *testing.T) {
	administrator := `"` + fixtures.Administrator.String() + `"`

	items := []struct {
		beneficiary    string
		fee            int
		administrators string
		file           string
	}{
		{"", 10, administrator, ""},                             // missing beneficiary
		{"0OIl", 10, administrator, ""},                         // not base58
		{fixtures.Beneficiary.String(), 101, administrator, ""}, // fee out of range
		{fixtures.Beneficiary.String(), 10, "", ""},             // no administrators
		{fixtures.Beneficiary.String(), 10, `"0OIl"`, ""},       // bad administrator
	}

	for i, item := range items {
		name := writeConfiguration(t, item.beneficiary, item.fee, item.administrators, item.file)
		_, err := getConfiguration(name, nil)
		assert.NotNil(t, err, "%d: expected error", i)
	}
}

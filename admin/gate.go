// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bitmark-inc/clonemarkd/account"
	"github.com/bitmark-inc/clonemarkd/fault"
	"github.com/bitmark-inc/logger"
)

// Gate - decides which callers may perform administrative operations
type Gate interface {
	IsAuthorized(account.Account) bool
}

// SingleGate - exactly one administrator
type SingleGate struct {
	administrator account.Account
}

// NewSingleGate - gate for one account
func NewSingleGate(administrator account.Account) (*SingleGate, error) {
	if administrator.IsZero() {
		return nil, fault.InvalidAccount
	}
	return &SingleGate{administrator: administrator}, nil
}

// IsAuthorized - true only for the administrator
func (g *SingleGate) IsAuthorized(caller account.Account) bool {
	return !caller.IsZero() && caller == g.administrator
}

// ListGate - a set of administrators, optionally extended from a file
//
// the file holds one base58 account per line, blank lines and lines
// starting with '#' are ignored
type ListGate struct {
	sync.RWMutex
	log      *logger.L
	fixed    []account.Account
	fileName string
	members  map[account.Account]struct{}
}

// NewListGate - gate for the fixed accounts plus those in fileName
//
// fileName may be empty
func NewListGate(log *logger.L, fixed []account.Account, fileName string) (*ListGate, error) {
	g := &ListGate{
		log:      log,
		fixed:    fixed,
		fileName: fileName,
	}
	err := g.Reload()
	if nil != err {
		return nil, err
	}
	return g, nil
}

// FileName - the administrators file, or empty
func (g *ListGate) FileName() string {
	return g.fileName
}

// IsAuthorized - true for any current member
func (g *ListGate) IsAuthorized(caller account.Account) bool {
	if caller.IsZero() {
		return false
	}
	g.RLock()
	_, ok := g.members[caller]
	g.RUnlock()
	return ok
}

// Count - number of administrators
func (g *ListGate) Count() int {
	g.RLock()
	defer g.RUnlock()
	return len(g.members)
}

// Reload - re-read the administrators file
//
// on error the current members are kept
func (g *ListGate) Reload() error {
	members := make(map[account.Account]struct{})
	for _, a := range g.fixed {
		if a.IsZero() {
			return fault.InvalidAccount
		}
		members[a] = struct{}{}
	}

	if "" != g.fileName {
		f, err := os.Open(g.fileName)
		if nil != err {
			g.log.Errorf("open: %q  error: %s", g.fileName, err)
			return err
		}
		defer f.Close()

		fromFile, err := readAccounts(f)
		if nil != err {
			g.log.Errorf("read: %q  error: %s", g.fileName, err)
			return err
		}
		for _, a := range fromFile {
			members[a] = struct{}{}
		}
	}

	g.Lock()
	g.members = members
	g.Unlock()

	g.log.Infof("administrators: %d", len(members))
	return nil
}

func readAccounts(r io.Reader) ([]account.Account, error) {
	accounts := []account.Account{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := account.FromBase58(line)
		if nil != err {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, scanner.Err()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type PaymentError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AccountingUnderflow            = ProcessError("clone count underflow")
	AlreadyInitialised             = ExistsError("already initialised")
	ArithmeticOverflow             = ProcessError("arithmetic overflow")
	CertificateFileAlreadyExists   = ExistsError("certificate file already exists")
	CloneLimitExceeded             = LimitError("clone limit exceeded")
	ConfigurationDirectoryNotFound = NotFoundError("configuration directory not found")
	DatabaseIsNotSet               = ProcessError("database is not set")
	DatabaseIsReadOnly             = ProcessError("database is read only")
	IdOutOfRange                   = InvalidError("item id out of range")
	InsufficientPayment            = PaymentError("insufficient payment")
	InvalidAccount                 = InvalidError("invalid account")
	InvalidBeneficiary             = InvalidError("invalid beneficiary")
	InvalidCount                   = InvalidError("invalid count")
	InvalidCursor                  = InvalidError("invalid cursor")
	InvalidIpAddress               = InvalidError("invalid IP address")
	InvalidLoggerChannel           = InvalidError("invalid logger channel")
	InvalidRange                   = InvalidError("value out of range")
	InvalidStructPointer           = InvalidError("invalid struct pointer")
	InvalidURI                     = InvalidError("invalid metadata URI")
	KeyFileAlreadyExists           = ExistsError("key file already exists")
	MissingParameters              = InvalidError("missing parameters")
	NotFound                       = NotFoundError("item not found")
	NotInitialised                 = ProcessError("not initialised")
	NotMintable                    = PermissionError("minting is disabled")
	RateLimiting                   = LimitError("rate limiting")
	TooManyItemsToProcess          = LimitError("too many items to process")
	TransactionAlreadyInUse        = ProcessError("transaction already in use")
	TransactionNotStarted          = ProcessError("transaction not started")
	TransferFailed                 = PaymentError("value transfer failed")
	Unauthorized                   = PermissionError("caller is not authorized")
	UnsupportedRecordVersion       = InvalidError("unsupported record version")
	WrongRecordLength              = InvalidError("wrong record length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LimitError) Error() string      { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PaymentError) Error() string    { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool      { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPayment(e error) bool    { _, ok := e.(PaymentError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }

package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for session and store preconditions
var (
	// ErrNoActiveAccount is returned when a workflow requires a signer
	// but no account has been set active on the session
	ErrNoActiveAccount = errors.New("no active account set - use /accounts/set_active before deploying or interacting")

	// ErrNotConnected is returned when a chain operation runs without an
	// active network connection
	ErrNotConnected = errors.New("not connected to any network")

	// ErrAccountNotFound is returned when a named keystore entry doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrTemplateExists is returned when adding a template that already exists
	ErrTemplateExists = errors.New("template already exists")

	// ErrInvalidAddress is returned when a contract address is not a valid
	// hex address
	ErrInvalidAddress = errors.New("invalid contract address")
)

// InvalidNameError is returned when a template or contract name is not a
// safe filename. Name validation runs before any file or network I/O.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
}

// TemplateNotFoundError is returned when the requested template is absent
// from the template store.
type TemplateNotFoundError struct {
	Template string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("%s template is not available", e.Template)
}

// ContractNameMismatchError is returned when the requested contract name
// does not match any contract declared inside the compiled source. This is
// the most common caller mistake: the template placeholder holding the
// contract's declared name must equal the requested contract_name.
type ContractNameMismatchError struct {
	Requested string
	Declared  []string
}

func (e *ContractNameMismatchError) Error() string {
	declared := make([]string, len(e.Declared))
	copy(declared, e.Declared)
	sort.Strings(declared)

	msg := fmt.Sprintf("contract %q is not declared in the compiled source - "+
		"make sure contract_name matches the contract name set by the template parameters", e.Requested)
	if len(declared) > 0 {
		msg += fmt.Sprintf(" (declared contracts: %s)", strings.Join(declared, ", "))
	}
	return msg
}

// ContractNotFoundError is returned when interacting with a contract whose
// source was never written to the contracts folder.
type ContractNotFoundError struct {
	Contract string
}

func (e *ContractNotFoundError) Error() string {
	return fmt.Sprintf("contract %q is unknown - deploy it first or check /contracts/ for known contracts", e.Contract)
}

// MethodNotFoundError is returned when a contract method cannot be resolved
// against the contract's ABI.
type MethodNotFoundError struct {
	Contract string
	Method   string
	Known    []string
}

func (e *MethodNotFoundError) Error() string {
	known := make([]string, len(e.Known))
	copy(known, e.Known)
	sort.Strings(known)

	msg := fmt.Sprintf("contract %q has no method %q", e.Contract, e.Method)
	if len(known) > 0 {
		msg += fmt.Sprintf(" (available methods: %s)", strings.Join(known, ", "))
	}
	return msg
}

// SubmissionError is returned when the compiler or chain rejects an
// operation, including submission timeouts.
type SubmissionError struct {
	Op  string
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// ConnectionError is returned when connecting to a network fails or the
// network name is unknown. The session's connection is left cleared.
type ConnectionError struct {
	Network string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to network %q: %v", e.Network, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError is returned when a method argument cannot be coerced
// to the type declared by the contract ABI.
type InvalidArgumentError struct {
	Method string
	Index  int
	Want   string
	Err    error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("argument %d of %s: expected %s: %v", e.Index, e.Method, e.Want, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// IncompleteTemplateError is returned by strict rendering when placeholder
// tokens remain after substitution.
type IncompleteTemplateError struct {
	Missing []string
}

func (e *IncompleteTemplateError) Error() string {
	missing := make([]string, len(e.Missing))
	copy(missing, e.Missing)
	sort.Strings(missing)
	return fmt.Sprintf("template placeholders left unsubstituted: %s", strings.Join(missing, ", "))
}

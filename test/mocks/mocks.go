// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/ledger.go -destination=ledger_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/store.go -destination=snapshot_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/auth.go -destination=authenticator_mock.go -package=mocks

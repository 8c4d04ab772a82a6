// Package keysets defines stored RSA parameter tuples and the contracts for persisting them
// and encrypting with them.
package keysets

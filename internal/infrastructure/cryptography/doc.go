// Package cryptography provides the processors behind classical.CipherEngine.
//
// Processors accept raw field values as typed by a user, resolve alphabet kinds and
// delegate the arithmetic to the classical package. A decomposed letter is composed only
// when the composed form belongs to the active alphabet; all other text is left as typed.
package cryptography

// Package classical implements the computational core of the cipher toolkit: arbitrary-precision
// modular arithmetic, textbook RSA parameter derivation and transforms, and the Caesar, Vigenère
// and Polybius substitutions over explicit Alphabet values.
//
// Every function in this package is pure. Nothing here logs or performs I/O; callers decide how
// errors and warnings are surfaced.
package classical

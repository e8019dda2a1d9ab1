// Package ta implements the DES trusted application: the per-connection cipher
// session, the four-command protocol (Prepare, SetKey, SetIV, Cipher) and the
// in-process host that owns the session table and drives the lifecycle hooks.
//
// Every command is validated before the crypto provider is touched. A command
// that fails leaves a prepared session prepared.
package ta

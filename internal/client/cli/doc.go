// Package cli implements ourchat-cli, a one-shot command-line client for
// the OurChat user service.
//
// Each subcommand dials the server given by --addr, performs one call and
// prints the result. Passwords are read from the terminal without echo.
// Commands that act on an existing session (logout, refresh) take the
// user id and token printed by login.
package cli

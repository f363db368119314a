// Package app runs a sandbox session in an ebiten window. Building it needs
// the ebiten tag; without the tag the package is empty.
package app

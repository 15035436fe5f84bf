//go:build !cgo

// Without cgo there is nothing to export. Plugin packages still build, so
// their Go code can be tested.
package cbridge

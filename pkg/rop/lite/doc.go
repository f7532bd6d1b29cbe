// Package lite runs a composed pipeline over many inputs with a fixed
// number of worker lines.
//
// Common usage:
// - Run: feed values from a channel, receive outcomes in completion order
// - Map: feed a slice, receive outcomes in input order
// - Finally: reduce a channel of outcomes to plain values
//
// A pipeline result that is asynchronous is awaited by the worker line that
// produced it, so the outcomes are always settled Results.
package lite

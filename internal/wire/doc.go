// Package wire owns the Vert.x EventBus clustering wire contract and
// parsing primitives.
//
// Ownership boundary:
// - cursor/primitive read primitives
// - header list and body codec decoding
// - top-level frame decode/encode entry points
package wire

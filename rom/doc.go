// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package rom assembles the microcode of every opcode into a control store
// table, and serializes that table as the image programmed into the control
// store memories.
//
// The control store is addressed by opcode and clock cycle:
//
//	address = opcode << 3 | cycle
//
// Each address holds one 64-bit control word. Opcodes 0x00..0x7f hold the
// normal instruction sequences, and opcodes 0x80..0xff the trap variants of
// the same instructions. Slots with no instruction hold idle words.
package rom

package ast

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	literalTag byte = iota + 1
	variableTag
	unaryTag
	binaryTag
)

func hashNode(n Node) uint64 {
	d := xxhash.New()
	n.writeHash(d)

	return d.Sum64()
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	d.Write(b[:])
}

// canonicalBits folds the values Equal treats as the same (-0 and +0, every
// NaN) onto a single bit pattern.
func canonicalBits(v float64) uint64 {
	switch {
	case math.IsNaN(v):
		return math.Float64bits(math.NaN())
	case v == 0:
		return 0
	}

	return math.Float64bits(v)
}

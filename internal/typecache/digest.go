package typecache

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest identifies the source bytes a cache entry was decoded from.
type Digest [32]byte

// Sum hashes the source bytes of an input file together with its logical
// name, so renamed inputs with identical content still get distinct entries.
func Sum(name string, data []byte) Digest {
	h := blake3.New()
	hf := blake3.New()
	_, _ = hf.Write(data)
	fmt.Fprintf(h, "%x  %s\n", hf.Sum(nil), name)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool { return d == Digest{} }

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

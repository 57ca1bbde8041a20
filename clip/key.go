package clip

import (
	"hash/fnv"

	"github.com/katalvlaran/funneltree/mesh"
)

// Key is the canonical, order-independent identity of an unfolded triangle
// (p,v,q): its three vertex indices sorted ascending, so two funnels that
// unfold the same mesh triangle in either winding collide on the same Key.
// Equality is checked by ordinary Go struct comparison after the shard
// lookup — MaxIndex's 1e8 bound only needs to keep Points/Triangles
// addressable; it plays no role in Key collision-proneness here since we
// never reduce Key to a smaller hash for equality, only for sharding.
type Key [3]mesh.VertexIndex

// NewKey returns the canonical Key for the triangle (p,v,q), grounded on
// the ascending three-way sort idiom used by iceisfun-gomesh's
// CanonicalTriangleKey for duplicate-triangle detection.
func NewKey(p, v, q mesh.VertexIndex) Key {
	k := Key{p, v, q}
	if k[0] > k[1] {
		k[0], k[1] = k[1], k[0]
	}
	if k[1] > k[2] {
		k[1], k[2] = k[2], k[1]
	}
	if k[0] > k[1] {
		k[0], k[1] = k[1], k[0]
	}
	return k
}

// shardHash spreads a Key across shards; it is not used for equality.
func shardHash(k Key) uint32 {
	h := fnv.New32a()
	var buf [12]byte
	for i, v := range k {
		u := uint32(v)
		buf[i*4] = byte(u)
		buf[i*4+1] = byte(u >> 8)
		buf[i*4+2] = byte(u >> 16)
		buf[i*4+3] = byte(u >> 24)
	}
	_, _ = h.Write(buf[:])
	return h.Sum32()
}

package agent

import (
	"encoding/binary"

	"lukechampine.com/blake3"
)

// PlanetSeed derives the random seed for one planet's turn. The same session
// seed, realm, turn and planet always give the same seed, so a recorded game
// replays identically.
func PlanetSeed(seed uint64, realm, turn int, planet string) int64 {
	buf := make([]byte, 24, 24+len(planet))
	binary.LittleEndian.PutUint64(buf[0:], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(realm))
	binary.LittleEndian.PutUint64(buf[16:], uint64(turn))
	buf = append(buf, planet...)
	sum := blake3.Sum256(buf)
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

// sessionSeed folds a host-provided game id into the configured seed.
func sessionSeed(seed uint64, game string) uint64 {
	if game == "" {
		return seed
	}
	buf := binary.LittleEndian.AppendUint64(nil, seed)
	sum := blake3.Sum256(append(buf, game...))
	return binary.LittleEndian.Uint64(sum[:8])
}

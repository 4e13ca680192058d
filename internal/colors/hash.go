package colors

// StableHash is DJB2 over the raw bytes of s. It is the only hash used for
// palette-slot preference and per-task jitter, so identical task ids map to
// identical colors across processes and platforms.
func StableHash(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

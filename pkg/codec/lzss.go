package codec

// lzssCodec is a sliding-window dictionary compressor. The token stream is
// a sequence of 2-byte units:
//
//	literal  0x00, value
//	match    (length-MinMatch)<<12 | (distance-1), high byte first
//
// Byte 0x00 is reserved for the literal flag, so a match token whose high
// byte would be zero (length == MinMatch at distance <= 256) is never
// emitted; the matcher demands a strictly longer match in that range and
// otherwise falls back to literals. Distance is limited to 4096 by the
// 12-bit field and length to MinMatch+15 by the 4-bit field.
type lzssCodec struct {
	opts Options
}

// bucketPruneInterval is how many tokens are emitted between full sweeps of
// the candidate table. The sweep drops out-of-window positions and trims
// every bucket back to HashLimit, bounding memory on pathological inputs.
const bucketPruneInterval = 1000

func newLZSS(opts Options) *lzssCodec {
	return &lzssCodec{opts: opts.normalize()}
}

func (c *lzssCodec) ID() ID       { return LZSS }
func (c *lzssCodec) Name() string { return "lzss" }

func (c *lzssCodec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	c.opts.Scheduler.YieldIfLarge(len(src))

	window := c.opts.Window
	minMatch := c.opts.MinMatch
	maxMatch := c.opts.MaxMatch
	hashLimit := c.opts.HashLimit

	// Candidate positions per 2-byte prefix. Buckets are slices appended
	// in scan order, so iteration is insertion-ordered and the first
	// longest match wins deterministically.
	table := make(map[uint16][]int)

	out := make([]byte, 0, len(src))
	pos := 0
	tokens := 0

	for pos < len(src) {
		bestLen, bestDist := 0, 0

		if pos+1 < len(src) {
			key := uint16(src[pos])<<8 | uint16(src[pos+1])

			for _, cand := range table[key] {
				dist := pos - cand
				if dist < 1 || dist > window {
					continue
				}
				limit := maxMatch
				if rem := len(src) - pos; rem < limit {
					limit = rem
				}
				length := 0
				for length < limit && src[cand+length] == src[pos+length] {
					length++
				}
				if length > bestLen {
					bestLen, bestDist = length, dist
				}
			}

			bucket := append(table[key], pos)
			if len(bucket) > hashLimit {
				bucket = bucket[len(bucket)-hashLimit:]
			}
			table[key] = bucket
		}

		// A match at MinMatch length within 256 bytes would encode with
		// a zero high byte and masquerade as a literal; skip it.
		if bestLen >= minMatch && (bestLen > minMatch || bestDist > 256) {
			code := uint16(bestLen-minMatch)<<12 | uint16(bestDist-1)
			out = append(out, byte(code>>8), byte(code))
			pos += bestLen
		} else {
			out = append(out, 0x00, src[pos])
			pos++
		}

		tokens++
		if tokens%bucketPruneInterval == 0 {
			c.pruneTable(table, pos, window, hashLimit)
		}
	}

	return out, nil
}

// pruneTable drops candidates that fell out of the window and trims every
// bucket back to the hash limit.
func (c *lzssCodec) pruneTable(table map[uint16][]int, pos, window, hashLimit int) {
	for key, bucket := range table {
		keep := bucket[:0]
		for _, cand := range bucket {
			if pos-cand <= window {
				keep = append(keep, cand)
			}
		}
		if len(keep) > hashLimit {
			keep = keep[len(keep)-hashLimit:]
		}
		if len(keep) == 0 {
			delete(table, key)
			continue
		}
		table[key] = keep
	}
}

func (c *lzssCodec) Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	c.opts.Scheduler.YieldIfLarge(len(src))

	minMatch := c.opts.MinMatch
	out := make([]byte, 0, len(src)*2)

	for i := 0; i < len(src); i += 2 {
		if i+1 >= len(src) {
			c.opts.Logger.Debug("lzss stream truncated mid-token",
				"tag", "codec", "consumed", i, "recovered", len(out))
			return out, &PartialDataError{Reason: "truncated lzss token"}
		}

		flag := src[i]
		if flag == 0x00 {
			out = append(out, src[i+1])
			continue
		}

		code := uint16(flag)<<8 | uint16(src[i+1])
		length := int(code>>12) + minMatch
		dist := int(code&0xFFF) + 1

		start := len(out) - dist
		if start < 0 {
			c.opts.Logger.Debug("lzss back-reference before start of output",
				"tag", "codec", "distance", dist, "recovered", len(out))
			return out, &PartialDataError{Reason: "invalid back-reference offset"}
		}

		// Byte-by-byte copy: the source region may overlap the bytes
		// being written when dist < length.
		for j := 0; j < length; j++ {
			out = append(out, out[start+j])
		}
	}

	return out, nil
}

package codec

// rleCodec encodes runs as (count, literal) byte pairs. Count is a single
// byte, so runs longer than 255 are split into consecutive pairs. The
// format only wins on highly repetitive payloads but decodes in one pass
// with no state.
type rleCodec struct {
	opts Options
}

func newRLE(opts Options) *rleCodec {
	return &rleCodec{opts: opts.normalize()}
}

func (c *rleCodec) ID() ID       { return RLE }
func (c *rleCodec) Name() string { return "rle" }

func (c *rleCodec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	c.opts.Scheduler.YieldIfLarge(len(src))

	out := make([]byte, 0, len(src))
	i := 0
	for i < len(src) {
		b := src[i]
		run := 1
		for i+run < len(src) && src[i+run] == b && run < 255 {
			run++
		}
		out = append(out, byte(run), b)
		i += run
	}
	return out, nil
}

func (c *rleCodec) Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	c.opts.Scheduler.YieldIfLarge(len(src))

	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); i += 2 {
		if i+1 >= len(src) {
			c.opts.Logger.Debug("rle stream truncated mid-pair",
				"tag", "codec", "consumed", i, "recovered", len(out))
			return out, &PartialDataError{Reason: "truncated rle pair"}
		}
		count := int(src[i])
		b := src[i+1]
		for j := 0; j < count; j++ {
			out = append(out, b)
		}
	}
	return out, nil
}

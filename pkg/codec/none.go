package codec

// noneCodec stores the payload uncompressed. Used when the payload is
// already dense or when the caller wants framing and checksums only.
type noneCodec struct {
	opts Options
}

func newNone(opts Options) *noneCodec {
	return &noneCodec{opts: opts.normalize()}
}

func (c *noneCodec) ID() ID       { return None }
func (c *noneCodec) Name() string { return "none" }

func (c *noneCodec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	c.opts.Scheduler.YieldIfLarge(len(src))

	dst := make([]byte, len(src))
	copy(dst, src)
	return dst, nil
}

func (c *noneCodec) Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	c.opts.Scheduler.YieldIfLarge(len(src))

	dst := make([]byte, len(src))
	copy(dst, src)
	return dst, nil
}

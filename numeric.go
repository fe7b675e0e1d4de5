package rollingstats

// Real is the set of numeric types the stream statistics operate on:
// any integer or floating-point kind with a defined ordering.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

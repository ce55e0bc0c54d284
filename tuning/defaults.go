package tuning

// row is one pixel format at one class: unmasked and masked parameters.
type row struct {
	class             Class
	format            Format
	stripes0, unroll0 int
	stripes1, unroll1 int
	branchless        bool
}

func (r row) key(masked bool) Key {
	return Key{Class: r.class, Format: r.format, Masked: masked}
}

// XABC rows repeat ABCX; the layouts differ only by a one-sample shift.

var amd64Rows = []row{
	{Class8, FormatMono, 8, 16, 4, 16, true},
	{Class8, FormatABC, 2, 8, 2, 4, true},
	{Class8, FormatABCX, 2, 8, 2, 4, true},
	{Class8, FormatXABC, 2, 8, 2, 4, true},
	{Class12, FormatMono, 4, 16, 2, 16, false},
	{Class12, FormatABC, 1, 8, 1, 4, false},
	{Class12, FormatABCX, 1, 8, 1, 4, false},
	{Class12, FormatXABC, 1, 8, 1, 4, false},
	{Class16, FormatMono, 2, 16, 1, 8, false},
	{Class16, FormatABC, 1, 4, 1, 2, false},
	{Class16, FormatABCX, 1, 4, 1, 2, false},
	{Class16, FormatXABC, 1, 4, 1, 2, false},
}

var arm64Rows = []row{
	{Class8, FormatMono, 4, 16, 4, 8, false},
	{Class8, FormatABC, 2, 8, 2, 4, false},
	{Class8, FormatABCX, 2, 8, 2, 4, false},
	{Class8, FormatXABC, 2, 8, 2, 4, false},
	{Class12, FormatMono, 2, 16, 2, 16, false},
	{Class12, FormatABC, 1, 8, 1, 4, false},
	{Class12, FormatABCX, 1, 8, 1, 4, false},
	{Class12, FormatXABC, 1, 8, 1, 4, false},
	{Class16, FormatMono, 1, 16, 2, 2, false},
	{Class16, FormatABC, 1, 2, 1, 1, false},
	{Class16, FormatABCX, 1, 2, 1, 1, false},
	{Class16, FormatXABC, 1, 2, 1, 1, false},
}

// genericRows were measured on a Cortex-A72 (Raspberry Pi 4).
var genericRows = []row{
	{Class8, FormatMono, 4, 16, 4, 8, false},
	{Class8, FormatABC, 2, 4, 2, 2, false},
	{Class8, FormatABCX, 2, 4, 2, 2, false},
	{Class8, FormatXABC, 2, 4, 2, 2, false},
	{Class12, FormatMono, 2, 16, 2, 16, false},
	{Class12, FormatABC, 1, 4, 1, 4, false},
	{Class12, FormatABCX, 1, 4, 1, 4, false},
	{Class12, FormatXABC, 1, 4, 1, 4, false},
	{Class16, FormatMono, 1, 16, 2, 2, false},
	{Class16, FormatABC, 1, 1, 1, 1, false},
	{Class16, FormatABCX, 1, 1, 1, 1, false},
	{Class16, FormatXABC, 1, 1, 1, 1, false},
}

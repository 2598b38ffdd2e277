package param

var (
	L = NewList
)

// D creates a Discrete mnemonic parameter.
func D(mnemonic string) Discrete {
	return Discrete(mnemonic)
}

// S creates a quoted String parameter.
func S(s string) String {
	return String(s)
}

// B creates a Block parameter.
func B(data []byte) Block {
	return Block(data)
}

// BOOL creates a Bool parameter.
func BOOL(v bool) Bool {
	return Bool(v)
}

// F4 creates a Float32 parameter.
func F4(v float32) Float32 {
	return Float32(v)
}

// F8 creates a Float64 parameter.
func F8(v float64) Float64 {
	return Float64(v)
}

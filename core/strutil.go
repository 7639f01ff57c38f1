package core

// appendUint appends the decimal form of n to buf without using fmt.
// This is a lightweight alternative for embedded systems.
func appendUint(buf []byte, n uint32) []byte {
	if n == 0 {
		return append(buf, '0')
	}

	// Build digits right to left in a scratch array
	var tmp [10]byte
	pos := len(tmp)
	for n > 0 {
		pos--
		tmp[pos] = byte('0' + n%10)
		n /= 10
	}

	return append(buf, tmp[pos:]...)
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	var buf [10]byte
	return string(appendUint(buf[:0], n))
}

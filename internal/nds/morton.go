package nds

// Morton code layout, NDS Format Specification 2.5.4, §7.2.1:
// code bit 2i holds longitude bit i and code bit 2i+1 holds latitude bit i,
// for i in [0, 30]. Bit 62 flags a negative longitude and bit 61 a negative
// latitude. The interleaved payload alone cannot carry the sign of a
// longitude that uses the full 32-bit range, hence the explicit flags.
const (
	mortonPayloadBits = 31
	mortonLonSignBit  = 62
	mortonLatSignBit  = 61
)

// ToSigned32 wraps v into the two's-complement 32-bit range. NDS fixed-point
// values are always transported as 32-bit signed integers, so every raw
// integer input passes through this before validation.
func ToSigned32(v int64) int32 {
	return int32(uint32(v))
}

// Interleave encodes a fixed-point coordinate pair as a single Morton
// (Z-order) code.
func Interleave(longitude, latitude int32) uint64 {
	lon := uint64(uint32(longitude))
	lat := uint64(uint32(latitude))

	var code uint64
	for i := uint(0); i < mortonPayloadBits; i++ {
		code |= (lon >> i & 1) << (2 * i)
		code |= (lat >> i & 1) << (2*i + 1)
	}
	if longitude < 0 {
		code |= 1 << mortonLonSignBit
	}
	if latitude < 0 {
		code |= 1 << mortonLatSignBit
	}
	return code
}

// Deinterleave decodes a Morton code back into a fixed-point coordinate
// pair. Longitude bit 31 lives above the interleaved payload and is
// recovered from code bit 62. Latitude is a 31-bit signed value; its top
// payload bit (bit 30) is promoted to the sign during extension, which
// round-trips every value Interleave produces.
func Deinterleave(code uint64) (longitude, latitude int32) {
	var lon, lat uint64
	for i := uint(0); i < mortonPayloadBits; i++ {
		lon |= (code >> (2 * i) & 1) << i
		lat |= (code >> (2*i + 1) & 1) << i
	}
	lon |= (code >> mortonLonSignBit & 1) << 31

	if lat&(1<<30) != 0 {
		lat |= 1 << 31
	}
	return int32(uint32(lon)), int32(uint32(lat))
}

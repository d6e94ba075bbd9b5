package mac

const (
	// groupBit is the I/G bit of the first octet: 1 means multicast.
	groupBit byte = 0x01
	// localBit is the U/L bit of the first octet: 1 means locally administered.
	localBit byte = 0x02
)

// NormalizeFirstByte clears the multicast bit of b and sets the
// locally-administered bit to local. All other bits are kept.
func NormalizeFirstByte(b byte, local bool) byte {
	b &^= groupBit
	if local {
		return b | localBit
	}
	return b &^ localBit
}

package wire

// decodeHeaders reads the header section. The leading 4-byte section length
// covers the whole section including itself; a value of 4 (or less) means the
// section holds no entries. The declared length is authoritative for the
// outer cursor position: after the entries are read the cursor lands on
// sectionStart+sectionLength, allowing trailing padding inside the section.
func decodeHeaders(d *decoder) ([]Header, error) {
	start := d.c.Offset()
	sectionLen, err := d.c.ReadI32()
	if err != nil {
		return nil, err
	}

	var headers []Header
	if sectionLen > 4 {
		count, err := d.c.ReadI32()
		if err != nil {
			return nil, err
		}
		for i := int32(0); i < count; i++ {
			key, err := d.readString("header.key")
			if err != nil {
				return nil, err
			}
			value, err := d.readString("header.value")
			if err != nil {
				return nil, err
			}
			headers = append(headers, Header{Key: key, Value: value})
		}
	}

	end := start + int(sectionLen)
	if end < start+4 {
		// never rewind before the length field itself
		end = start + 4
	}
	if err := d.c.SeekTo(end); err != nil {
		return nil, err
	}
	return headers, nil
}

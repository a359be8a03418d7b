package gpu

import (
	"bytes"
	"encoding/binary"
	"log"
)

// RawBytes writes a given object as its little endian byte representation, voiding all type information in the
// process. This is mainly used to be able to put data into vk.Memcopy.
func RawBytes(p interface{}) []byte {
	buf := new(bytes.Buffer)
	err := binary.Write(buf, binary.LittleEndian, p)
	if err != nil {
		log.Printf("binary.Write failed: %s", err)
	}
	return buf.Bytes()
}

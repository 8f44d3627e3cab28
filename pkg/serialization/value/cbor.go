package value

import (
	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding so equal values always produce identical bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("value: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		MaxArrayElements: 1 << 20,
	}.DecMode()
	if err != nil {
		panic("value: CBOR decoder initialization failed: " + err.Error())
	}
}

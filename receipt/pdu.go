package receipt

import (
	"errors"
	"fmt"

	"github.com/mdigger/smpp"

	"smpptime/coder"
)

// receiptClass is the esm_class bit marking a deliver_sm as a delivery
// receipt.
const receiptClass = 0x04

// FromShortMessage parses a receipt from the raw short_message field of
// a deliver_sm. The esm_class must carry the receipt bit; the text is
// decoded according to dataCoding before parsing.
func (p Parser) FromShortMessage(esmClass, dataCoding uint8, raw []byte) (*Report, error) {
	if esmClass&receiptClass == 0 {
		return nil, fmt.Errorf("esm_class %#04x does not mark a delivery receipt", esmClass)
	}
	return p.Parse(coder.Decode(dataCoding, raw))
}

// FromPdu parses a receipt out of an already framed deliver_sm. Framing
// and session handling stay with the SMPP connection that produced the
// PDU; this only inspects its fields.
func (p Parser) FromPdu(pdu smpp.Pdu) (*Report, error) {
	if id := pdu.GetHeader().Id; id != smpp.DELIVER_SM {
		return nil, fmt.Errorf("pdu %v is not a deliver_sm", id)
	}
	classField := pdu.GetField(smpp.ESM_CLASS)
	if classField == nil {
		return nil, errors.New("deliver_sm without an esm_class field")
	}
	msgField := pdu.GetField(smpp.SHORT_MESSAGE)
	if msgField == nil {
		return nil, errors.New("deliver_sm without a short_message field")
	}
	var dataCoding uint8
	if f := pdu.GetField(smpp.DATA_CODING); f != nil {
		dataCoding = f.Value().(uint8)
	}
	return p.FromShortMessage(classField.Value().(uint8), dataCoding, msgField.ByteArray())
}

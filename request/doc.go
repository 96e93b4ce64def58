// Package request implements USB 2.0 control request parsing
// (USB 2.0 Spec Chapter 9).
//
// [SetupPacket] is the raw 8-byte SETUP data payload with its five fixed
// fields. [Classify] goes one step further and validates a setup packet
// against the standard request definitions of USB 2.0 Section 9.4,
// returning a typed [Request] whose concrete type identifies the request
// and whose fields carry only the values meaningful to it:
//
//	var setup request.SetupPacket
//	if err := request.ParseSetupPacket(raw, &setup); err != nil {
//	    return err
//	}
//	req, err := request.Classify(&setup)
//	if err != nil {
//	    return err // malformed or non-standard request
//	}
//	switch req := req.(type) {
//	case request.SetAddress:
//	    // req.Address
//	case request.GetDescriptor:
//	    // req.Descriptor, req.Length
//	}
//
// Classification is strict: a request whose wValue, wIndex, or wLength
// does not satisfy the constraints of Section 9.4 is rejected with
// [pkg.ErrInvalidRequest] even when the request code itself is known.
package request

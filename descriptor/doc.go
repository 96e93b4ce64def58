// Package descriptor implements encoding and decoding of the standard
// USB 2.0 descriptors (USB 2.0 Spec Section 9.6): device, device
// qualifier, configuration, interface, interface association, endpoint,
// and string descriptors.
//
// Each descriptor is a plain struct with a Parse function and a
// MarshalTo method, both operating on caller-provided buffers:
//
//	var dev descriptor.Device
//	if err := descriptor.ParseDevice(data, &dev); err != nil {
//	    return err
//	}
//
//	buf := make([]byte, descriptor.DeviceSize)
//	n := dev.MarshalTo(buf)
//
// Multi-byte fields are little-endian per the USB specification. Parse
// functions validate the bDescriptorType byte and minimum length but not
// cross-descriptor consistency (wTotalLength versus actual content is a
// concern of the enumeration layer).
package descriptor

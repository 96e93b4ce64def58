// Package hid implements the Human Interface Device class data model:
// the HID class descriptor, the class-specific request codes, and a
// classifier that turns a SETUP packet into a typed HID request.
//
// Report descriptor contents are opaque to this package; only their
// type and length travel through the HID descriptor and the
// GET_DESCRIPTOR request.
package hid

// Package cdc implements the Communications Device Class data model,
// covering the Abstract Control Model (ACM) used by USB serial ports.
//
// The package provides the class-specific functional descriptors that
// follow the communications interface descriptor on the wire (header,
// call management, ACM, union), the line coding structure exchanged by
// GET_LINE_CODING and SET_LINE_CODING, the SERIAL_STATE notification,
// and a classifier that turns a SETUP packet into a typed ACM request.
package cdc

// Package domain models simulated forest-sensor readings.
//
// # Data Source
//
// Readings arrive as a single CSV resource produced by the sensor simulator,
// one row per reading, with the header:
//
//	timestamp, temperature, pressure, motion_x, motion_y, motion_z, location, event
//
// Headers and values may carry stray whitespace and surrounding quote
// characters; the CSV source strips both before rows reach this package.
//
// # Field Conventions
//
// Timestamp:
//
//	Any layout dateparse recognizes (RFC3339, "2006-01-02 15:04:05", unix
//	epochs, and the usual regional variants). A row without a parseable
//	timestamp is dropped.
//
// Location:
//
//	"<lat>,<lon>" as two decimal degrees, e.g. "13.08,80.27". Both halves
//	must be finite floats; otherwise the row is dropped. Retained readings
//	therefore always carry usable map coordinates.
//
// Numeric channels (temperature, pressure, motion_x/y/z):
//
//	Independently nullable. Absent, non-numeric, and non-finite values
//	become JSON null — never NaN — and never discard the row.
//
// Motion magnitude:
//
//	Derived, not sourced: the Euclidean norm of the three motion axes.
//	Null whenever any axis is null.
//
// Event tags:
//
//	Free-form categorical labels. The simulator emits "fire_risk",
//	"motion_detected", and "None"; an empty tag defaults to "None". The
//	distribution chart tallies only the known three, always over the
//	unfiltered dataset.
//
// # Lifecycle
//
// The normalized set is built once per load and is immutable afterwards.
// Filtering produces derived views over the snapshot; nothing mutates it.
package domain

// Package kernel holds the value objects shared by every aggregate of the
// marketplace: identifiers and monetary amounts.
//
// Values in this package are immutable. Their zero values are invalid and are
// rejected by Validate, so aggregates can check that a field was populated
// through a constructor.
package kernel

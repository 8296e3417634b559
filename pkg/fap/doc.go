// Package fap holds the TR-196 FAPService data model for femto access
// points, rooted at Device.Services.FAPService.{i}.
package fap

//go:generate go run ../../cmd/cwmp-entgen -schema ../../schema/fap.yaml -output .

// Package stb holds the TR-135 STBService data model rooted at
// Device.Services.STBService.{i}.
package stb

//go:generate go run ../../cmd/cwmp-entgen -schema ../../schema/stb.yaml -output .

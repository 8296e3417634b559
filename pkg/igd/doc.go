// Package igd holds the TR-098 InternetGatewayDevice data model.
//
// Every object of the tree is a generated struct with pointer parameters,
// so a fresh entity has every parameter unset:
//
//	t := igd.NewTime().
//		WithNTPServer1("pool.ntp.org").
//		WithNTPServer2("time.google.com")
//
// Multi-instance objects are slices; instance n of a collection is the
// element at index n-1.
package igd

//go:generate go run ../../cmd/cwmp-entgen -schema ../../schema/igd.yaml -output .

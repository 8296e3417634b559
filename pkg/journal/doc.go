// Package journal records parameter changes made to entity trees.
//
// A journal is a stream of CBOR-encoded events, one per attempted write.
// It is separate from operational logging (zerolog): the journal is a
// machine-readable audit trail of what changed in a document, when, and
// what the tree fingerprint was afterwards.
//
// # Basic Usage
//
//	fl, _ := journal.NewFileLogger("gateway.cjl")
//	defer fl.Close()
//
//	rec := journal.NewRecorder(tree, journal.NewMultiLogger(
//	    journal.NewZerologAdapter(log),
//	    fl,
//	))
//	rec.Set("InternetGatewayDevice.Time.NTPServer1", "pool.ntp.org")
//
// # File Format
//
// Journal files are concatenated CBOR items, conventionally with the
// .cjl extension. The cwmp-tree journal command prints and filters them.
package journal

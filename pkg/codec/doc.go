// Package codec reads and writes entity trees as documents.
//
// XML, JSON and YAML documents use the element names carried in the
// entity struct tags. CBOR documents are wrapped in a Snapshot envelope
// that records the root object and a fingerprint of the tree so a
// restored snapshot can be checked against the tree that was saved.
//
// The root element of an XML document is the root object name:
//
//	<InternetGatewayDevice>
//	  <Time>
//	    <NTPServer1>pool.ntp.org</NTPServer1>
//	  </Time>
//	</InternetGatewayDevice>
package codec

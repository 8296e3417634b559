// Package model describes the CWMP data model carried by generated entities.
//
// # Entities
//
// Every object of a CWMP parameter tree is represented by a plain Go struct
// generated by cwmp-entgen. Entities hold no behavior besides accessors:
//
//	InternetGatewayDevice.
//	├── DeviceInfo.
//	├── Time.
//	└── WANDevice.{i}.
//	    └── WANConnectionDevice.{i}.
//	        ├── WANIPConnection.{i}.
//	        └── WANPPPConnection.{i}.
//
// Scalar parameters are pointer fields where nil means the parameter is
// unset. Singular child objects are pointer fields. Multi-instance objects
// are slices of pointers; the instance number of an element is its 1-based
// position in the slice.
//
// # Metadata
//
// Parameter and object metadata lives in the cwmp struct tag:
//
//	cwmp:"Name,rw,string,maxLength=64"
//	cwmp:"Name,ro,unsignedInt,min=1,max=65535,units=seconds"
//	cwmp:"Name,object"
//	cwmp:"Name,multi"
//
// SchemaOf turns those tags into ObjectMetadata. The constraints are
// descriptive: setters never enforce them. The validate package reads
// them and reports violations.
//
// # Registry
//
// Entity packages register their root object with DefaultRegistry in init,
// which makes every object template of the tree resolvable:
//
//	meta, err := model.DefaultRegistry.Lookup("InternetGatewayDevice.WANDevice.{i}.")
package model

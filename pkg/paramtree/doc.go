// Package paramtree addresses the parameters of an entity tree by their
// dotted CWMP paths.
//
// A Tree wraps a root entity together with the concrete path prefix it
// lives at:
//
//	tree, _ := paramtree.New(root, "InternetGatewayDevice.")
//	p, _ := tree.Get("InternetGatewayDevice.Time.NTPServer1")
//	_ = tree.Set("InternetGatewayDevice.WANDevice.1.WANCommonInterfaceConfig.EnabledForInternet", "true")
//
// Instance numbers are 1-based positions in the multi-instance slices.
// Set converts the CWMP string form into the typed field and allocates
// missing singular objects on the way; it never creates instances and it
// does not enforce declared constraints (see package validate).
//
// Values use the CWMP string forms: decimal integers, "true"/"false"
// (reading also accepts "1"/"0"), RFC 3339 date-times, standard base64
// and hex.
package paramtree

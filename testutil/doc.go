// Package testutil provides test data generators for the protocol-version
// registry.
//
// Generators follow the functional-option pattern so tests state only what
// they care about:
//
//	adv := testutil.NewTestAdvertisement(
//	    testutil.WithProtocols("Relay=1-2,Link=1-4"),
//	)
//
//	advs := testutil.GenerateTestAdvertisements(10,
//	    testutil.WithProtocols("Relay=1-2"),
//	)
package testutil

// Package setconfig holds the raw, order-preserving configuration of
// responsive image sets.
//
// Configuration is decoded from YAML into a tree of Node values. Unlike a
// decode into Go maps, mapping keys keep their declaration order, which the
// legacy "arguments" format relies on: each media query becomes one picture
// source and browsers pick the first matching source. Map keys also keep
// their resolved YAML tag, so a key written as ~ or 0x1F can be told apart
// from a quoted string.
//
//	root, err := setconfig.DecodeFile("responsive-images.yml")
//	if err != nil {
//	    return err
//	}
//	sets, err := setconfig.NewSets(root)
//
// Set names are looked up case-insensitively, using Unicode case folding.
package setconfig

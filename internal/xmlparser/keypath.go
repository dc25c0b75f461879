package xmlparser

// KeyPath returns the flattened key of an element named localName whose
// ancestors (below the item) already produced prefix.
//
//	KeyPath("", "name")          == "name"
//	KeyPath("address", "city")   == "address.city"
func KeyPath(prefix, localName string) string {
	if prefix == "" {
		return localName
	}
	return prefix + "." + localName
}

// AttrKey returns the flattened key of attribute attrName on the element
// whose key is elementKey. Attributes of the item itself have an empty
// elementKey and produce "@attrName".
//
//	AttrKey("", "id")            == "@id"
//	AttrKey("address", "type")   == "address.@type"
func AttrKey(elementKey, attrName string) string {
	if elementKey == "" {
		return "@" + attrName
	}
	return elementKey + ".@" + attrName
}

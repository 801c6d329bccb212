// Package query selects nodes of a document with RFC 9535 JSONPath
// expressions such as
//
//	$.store.book[?@.price < 10].title
//	$..author
//
// Results are the nodes of the tree itself, not copies, so they can be
// modified in place or passed to ir.Delete. The order in which members of
// a single Object are visited by wildcard and descendant selectors is
// unspecified; Array elements are visited in order.
package query

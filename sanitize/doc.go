// Package sanitize rewrites JSON Schema documents into the restricted
// dialect MongoDB accepts under the $jsonSchema operator.
//
// The rewrite walks a decoded schema tree bottom-up. Keywords the server
// does not understand are dropped, "integer" and "number" declarations
// collapse onto BSON numeric aliases, and user field names survive intact
// even when they collide with keyword names. Input trees are never
// mutated; every composite value is rebuilt.
package sanitize

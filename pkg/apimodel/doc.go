// Package apimodel holds the wire representation of Nucleus One API payloads.
//
// Types in this package mirror the service's JSON schema field for field. They carry no
// behavior beyond (de)serialization; the client-facing models live in package n1 and are built
// from these types with the FromWire conversions.
//
// Collections come in two JSON shapes. Object-root collections are a named array inside an
// object (for example {"Projects": [...]}) and are parsed with CollectionFromJSON. Array-root
// collections are a bare JSON array and are parsed element by element with
// CollectionFromJSONArray.
package apimodel

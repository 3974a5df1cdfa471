// Package spec loads file-format descriptions and parses their field sizes.
//
// A spec is an ordered list of categories, each holding an ordered list of
// fields with a human-readable size:
//
//	- name: header
//	  fields:
//	    - name: magic
//	      size: 4 bytes
//	    - name: version
//	      size: 2 bytes
//	- name: payload
//	  fields:
//	    - name: data
//	      size: 2 KiB
//
// The same structure is accepted as JSON and as TOML (a top-level
// [[category]] array). Loading never mutates the declared fields; sizes are
// parsed once into [ParsedField] values which the layout engine consumes.
package spec

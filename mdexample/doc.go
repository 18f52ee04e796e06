// Package mdexample checks the YAML examples embedded in markdown
// documents.
//
// An example is a fenced block opened with
//
//	```yaml [width [indent]]
//
// whose content must already be in canonical form: parsing it and dumping
// the result with the given width (default 120) and indent (default 2)
// must reproduce it byte for byte. This keeps documentation and the
// encoder honest with each other.
package mdexample

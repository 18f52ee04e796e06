// Package token decides how a single scalar string is spelled in YAML
// flow position: plain, single quoted, or double quoted with escapes.
//
// The rules are context independent: a spelling chosen here is valid
// both as a block mapping value and inside a flow collection, so a value
// does not change spelling when its parent switches between block and
// flow form.
//
// # Usage
//
//	token.Flow("hello")   // hello
//	token.Flow("true")    // 'true'
//	token.Flow("a\tb")    // "a\tb"
package token

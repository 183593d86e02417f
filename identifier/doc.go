// Package identifier assembles RFC 4122 version 4 UUIDs.
//
// Builder composes a UUID byte by byte from an injected random.Source, while
// External delegates to github.com/google/uuid. Both satisfy Generator; a
// single identifier should never mix the two.
package identifier

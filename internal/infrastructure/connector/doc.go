// Package connector stores key material outside the registry database.
// Keys are kept as newline-separated decimal text files, one directory per key pair.
package connector

// Package keys defines key pair and signature metadata together with the
// service, repository and key store contracts built around them.
package keys

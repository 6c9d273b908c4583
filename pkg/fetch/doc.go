// Package fetch retrieves the remote tree over HTTP.
//
// Fetcher is the capability the installer consumes; HTTPFetcher is the
// net/http implementation. Source turns the configured base URL into the
// URLs of the version marker, the manifest and every listed file.
//
// Nothing here retries. A failed request is reported once, with the URL and
// status attached as error details, and the caller decides what to abort.
package fetch

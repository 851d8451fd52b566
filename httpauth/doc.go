// Package httpauth injects netrc credentials into outgoing HTTP requests.
//
// Transport wraps an http.RoundTripper: for each request without an
// Authorization header it looks up the target hostname in the store (exact
// machine entry first, then the default entry) and, when an entry with
// credentials exists, sets Basic Auth on a clone of the request. Requests
// with no match pass through untouched; a miss is never an error.
//
//	nrc, err := netrc.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := httpauth.Client(nrc)
//	resp, err := client.Get("https://api.example.com/data")
//
// The package performs no network calls of its own and never persists
// credentials; it only reads the store handed to it.
package httpauth

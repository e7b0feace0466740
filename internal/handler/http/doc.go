// Package http implements the HTTP transport layer of the recipe-share API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, CORS, response
// compression and the authorization gate are handled in this package
// before requests are delegated to the service layer.
package http

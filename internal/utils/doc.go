// Package utils provides small helpers shared by the server and the client:
// JSON response writing, the resty-based HTTP client and identifier
// generation.
package utils

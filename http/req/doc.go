/*
Package req provides a helper for parsing payloads in an HTTP request.

It supports JSON-encoded payloads and payloads encoded in query parameters.
In both cases, package req expects to parse payloads into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the payload to fields on the struct.
Second, for validating the payload's data meets requirements.

Failures are translated to hostcfg sentinel errors
so handlers see the same errors regardless of how a payload was encoded.
*/
package req

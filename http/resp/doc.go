/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

Bodies are always JSON:
  - Json writes whatever Data holds, as is
  - Err writes {"message": "..."} from the error and logs it
  - NoContent writes nothing
*/
package resp

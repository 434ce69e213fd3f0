/*
Package configuration stores each User's named Configurations
and serves them sorted and paginated.

Sort directives name a field, bare for descending or prefixed with "^" for ascending:

	configuration.Sort("port,^name", cfgs)

orders by port, highest first, then by name, A to Z.
*/
package configuration

/*
Package api answers the hostcfg HTTP API.

	POST   /users                        register a User
	POST   /login                        trade a name and password for an auth token
	GET    /logout                       forget the auth token
	GET    /configurations/{user}        list a User's Configurations, sorted and paginated
	GET    /configurations/{user}/{name} get one Configuration
	DELETE /configurations/{user}/{name} delete one Configuration
	POST   /configurations/{user}        create a Configuration
	PUT    /configurations/{user}        replace a Configuration

Every /configurations route requires the auth token of the User named in the path.
Failures come back as {"message": "..."}:
404 from the GETs under /configurations and 400 from everything else.
*/
package api

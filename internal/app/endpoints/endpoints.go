package endpoints

// Endpoints collects every endpoint group exposed over HTTP.
type Endpoints struct {
	MeetupEndpoint MeetupEndpoint
}

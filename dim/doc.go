// Package dim provides a client for the Dim media server's v1 HTTP API.
//
// Dim is a self-hosted media manager. This package covers its library,
// media, TV, search, dashboard and streaming endpoints behind typed methods.
//
// Create a client with your server URL and credentials; construction logs in
// and fails if authentication does not succeed:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := dim.New("https://dim.example.com", "user", "pass", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	libraries, err := client.Libraries(context.Background())
//
// # Error handling
//
// By default the client mirrors the server's web UI behavior: a failed call
// returns the empty value for its result type and a nil error, with the
// cause visible only in debug logs. Callers that need to tell a 404 from a
// network outage can opt into strict mode:
//
//	client, err := dim.New(url, user, pass, logger, dim.WithStrictErrors())
//
// In strict mode transport failures return the wrapped network error and
// non-2xx statuses return an *APIError with classification helpers.
package dim

// Package n1client is the entry point for constructing a Nucleus One client that implements the
// n1.Client interface.
//
// It normalizes the configuration and wires the HTTP transport and API key authentication
// beneath the hierarchy defined in the n1 package.
//
//	ctx := context.Background()
//
//	client, err := n1client.New(ctx, &n1.Config{APIKey: os.Getenv("N1_API_KEY")})
//	if err != nil { log.Fatal(err) }
//
//	orgs, err := client.GetAllOrganizations(ctx)
//	if err != nil { log.Fatal(err) }
//
//	for _, org := range orgs.All() {
//	  project, _ := client.Organization(org.ID())
//	  _ = project
//	}
//
// # Ambient client
//
// A client bound with n1.RunWithContext, or set with n1.SetDefault[n1.Client], is returned by
// FromContext. Code deep in a call chain can reach the client without threading it through every
// signature.
package n1client

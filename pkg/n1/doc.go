// Package n1 provides types, interfaces, and helpers for working with the
// Nucleus One document management API.
//
// # Overview
//
// The n1 package defines the client-side models (OrganizationForClient, Field,
// DocumentFolder, SearchResult, ...) and the interfaces of the object hierarchy
// (Client, OrganizationClient, ProjectClient, FieldClient, DocumentFolderClient).
// The concrete implementation lives in the n1client package, which wires
// configuration, transport and authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/n1-client/pkg/n1"
//	  "github.com/fivetwenty-io/n1-client/pkg/n1client"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := n1client.New(ctx, &n1.Config{APIKey: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  orgs, err := cli.GetAllOrganizations(ctx)
//	  if err != nil { log.Fatal(err) }
//	  for _, org := range orgs.All() {
//	    log.Println(org.Name())
//	  }
//	}
//
// # Models
//
// Every model has a wire twin in package apimodel. XFromWire builds the client
// model and ToWire projects it back. Client models are read-only; their fields
// are reached through getters and every model remembers the App it was loaded
// through.
//
// # Paging
//
// List endpoints return one page at a time as a QueryResult. WalkPages follows
// the cursor until a short page (or a page size of zero) marks the end and
// returns every item, or an error and nothing.
//
// # Scoped context
//
// RunWithContext binds a value, typically the *App or a Client, to the context
// handed to a callback. CurrentOrDefault and AppFrom look it up again, falling
// back to the process default set with SetDefault.
//
// # Errors
//
// Non-2xx responses surface as *HTTPError; IsNotFound, IsUnauthorized and
// IsForbidden branch on the common cases. Malformed payloads match ErrDecode.
package n1

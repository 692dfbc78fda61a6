package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/fivetwenty-io/n1-client/internal/http"
	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
)

// OrganizationClient implements n1.OrganizationClient.
type OrganizationClient struct {
	client *Client
	id     string
}

// ID implements n1.OrganizationClient.ID.
func (o *OrganizationClient) ID() string {
	return o.id
}

// App implements n1.OrganizationClient.App.
func (o *OrganizationClient) App() *n1.App {
	return o.client.app
}

// Project implements n1.OrganizationClient.Project.
func (o *OrganizationClient) Project(projectID string) (n1.ProjectClient, error) {
	err := n1.ValidateID("project ID", projectID)
	if err != nil {
		return nil, err
	}

	return &ProjectClient{client: o.client, organizationID: o.id, id: projectID}, nil
}

func (o *OrganizationClient) homeQuery() url.Values {
	return url.Values{"homePath": []string{n1.OrganizationLink(o.id, n1.HomePath())}}
}

// GetProjectsPaged implements n1.OrganizationClient.GetProjectsPaged.
func (o *OrganizationClient) GetProjectsPaged(ctx context.Context, query *n1.ProjectsQuery, cursor string) (*n1.QueryResult[*n1.OrganizationProjectCollection], error) {
	path := organizationPath(pathOrganizationProjects, o.id)

	result, err := getItemsPaged[*n1.OrganizationProjectCollection, apimodel.OrganizationProjectCollection](ctx, o.client, path, query.ToValues(), cursor)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return result, nil
}

// GetAllProjects implements n1.OrganizationClient.GetAllProjects.
func (o *OrganizationClient) GetAllProjects(ctx context.Context, query *n1.ProjectsQuery) (*n1.OrganizationProjectCollection, error) {
	items, err := n1.WalkPages[*n1.OrganizationProject](ctx, func(ctx context.Context, cursor string) (*n1.QueryResult[*n1.OrganizationProjectCollection], error) {
		return o.GetProjectsPaged(ctx, query, cursor)
	})
	if err != nil {
		return nil, err
	}

	return n1.NewOrganizationProjectCollection(o.client.app, items...), nil
}

// CreateProject implements n1.OrganizationClient.CreateProject.
func (o *OrganizationClient) CreateProject(ctx context.Context, request *n1.CreateProjectRequest) (*n1.OrganizationProject, error) {
	if request == nil {
		return nil, fmt.Errorf("project name: %w", n1.ErrBlankValue)
	}

	err := n1.ValidateID("project name", request.Name)
	if err != nil {
		return nil, err
	}

	homeLink := n1.OrganizationLink(o.id, n1.HomePath())
	query := url.Values{
		"homePath":          []string{homeLink},
		"projectPathPrefix": []string{homeLink},
	}

	body := []apimodel.NewProject{{
		Name:              request.Name,
		AccessType:        string(request.AccessLevel.AccessType()),
		SourceID:          request.TemplateID,
		SourceContentCopy: request.SourceContentCopy,
	}}

	resp, err := o.client.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   organizationPath(pathOrganizationProjects, o.id),
		Query:  query,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	wire, err := apimodel.CollectionFromJSONArray[apimodel.OrganizationProjectCollection](resp.Body, apimodel.ParseEntity[apimodel.OrganizationProject])
	if err != nil {
		return nil, fmt.Errorf("parsing create project response: %w", err)
	}

	if len(wire.Projects) == 0 {
		return nil, nil //nolint:nilnil // the service created nothing
	}

	return n1.OrganizationProjectFromWire(&wire.Projects[0], o.client.app)
}

// GetMembersPaged implements n1.OrganizationClient.GetMembersPaged.
func (o *OrganizationClient) GetMembersPaged(ctx context.Context, cursor string) (*n1.QueryResult[*n1.OrganizationMemberCollection], error) {
	path := organizationPath(pathOrganizationMembers, o.id)

	result, err := getItemsPaged[*n1.OrganizationMemberCollection, apimodel.OrganizationMemberCollection](ctx, o.client, path, nil, cursor)
	if err != nil {
		return nil, fmt.Errorf("listing organization members: %w", err)
	}

	return result, nil
}

// GetAllMembers implements n1.OrganizationClient.GetAllMembers.
func (o *OrganizationClient) GetAllMembers(ctx context.Context) (*n1.OrganizationMemberCollection, error) {
	items, err := n1.WalkPages[*n1.OrganizationMember](ctx, o.GetMembersPaged)
	if err != nil {
		return nil, err
	}

	return n1.NewOrganizationMemberCollection(o.client.app, items...), nil
}

// AddMembers implements n1.OrganizationClient.AddMembers.
func (o *OrganizationClient) AddMembers(ctx context.Context, members *n1.OrganizationMemberCollection) (*n1.OrganizationMemberCollection, error) {
	wire := members.ToWire()

	req, err := jsonArrayRequest[apimodel.OrganizationMember](http.MethodPost, organizationPath(pathOrganizationMembers, o.id), o.homeQuery(), &wire)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("adding organization members: %w", err)
	}

	added, err := apimodel.CollectionFromJSONArray[apimodel.OrganizationMemberCollection](resp.Body, apimodel.ParseEntity[apimodel.OrganizationMember])
	if err != nil {
		return nil, fmt.Errorf("parsing add members response: %w", err)
	}

	return convertCollection[*n1.OrganizationMemberCollection](added, o.client.app)
}

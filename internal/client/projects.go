package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	internalhttp "github.com/fivetwenty-io/n1-client/internal/http"
	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
)

// Metadata filter constants understood by the search and member endpoints.
const (
	filterFieldTypeText   = "FieldType_Text"
	filterOperatorEquals  = "equals"
	filterFieldUserEmail  = "Meta_text_kw256lc[UserEmail].keyword"
	filterFieldProjectID  = "Meta_kw256[ProjectID]"
	filterFieldTextFormat = "IxF_Text[%s]"
	contentTypeDocument   = "Document"
)

// ProjectClient implements n1.ProjectClient.
type ProjectClient struct {
	client         *Client
	organizationID string
	id             string
}

// ID implements n1.ProjectClient.ID.
func (p *ProjectClient) ID() string {
	return p.id
}

// OrganizationID implements n1.ProjectClient.OrganizationID.
func (p *ProjectClient) OrganizationID() string {
	return p.organizationID
}

// App implements n1.ProjectClient.App.
func (p *ProjectClient) App() *n1.App {
	return p.client.app
}

// Field implements n1.ProjectClient.Field.
func (p *ProjectClient) Field(fieldID string) (n1.FieldClient, error) {
	err := n1.ValidateID("field ID", fieldID)
	if err != nil {
		return nil, err
	}

	return &FieldClient{project: p, id: fieldID}, nil
}

// DocumentFolder implements n1.ProjectClient.DocumentFolder.
func (p *ProjectClient) DocumentFolder(documentFolderID string) (n1.DocumentFolderClient, error) {
	err := n1.ValidateID("document folder ID", documentFolderID)
	if err != nil {
		return nil, err
	}

	return &DocumentFolderClient{project: p, id: documentFolderID}, nil
}

func (p *ProjectClient) path(format string) string {
	return projectPath(format, p.organizationID, p.id)
}

// CreateDocumentFolder implements n1.ProjectClient.CreateDocumentFolder.
func (p *ProjectClient) CreateDocumentFolder(ctx context.Context, name, parentID string) (*n1.DocumentFolder, error) {
	err := n1.ValidateID("document folder name", name)
	if err != nil {
		return nil, err
	}

	folder := apimodel.NewDocumentFolder{
		Name:                 name,
		AssignmentUserEmails: []string{},
	}

	if parentID != "" {
		folder.ParentID = &parentID
	}

	query := url.Values{
		"documentFolderPathPrefix": []string{
			n1.OrganizationLink(p.organizationID, n1.WorkspaceDocumentFoldersPath(p.id)),
		},
	}

	resp, err := p.client.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   p.path(pathProjectDocumentFolders),
		Query:  query,
		Body:   []apimodel.NewDocumentFolder{folder},
	})
	if err != nil {
		return nil, fmt.Errorf("creating document folder: %w", err)
	}

	wire, err := apimodel.CollectionFromJSONArray[apimodel.DocumentFolderCollection](resp.Body, apimodel.ParseEntity[apimodel.DocumentFolder])
	if err != nil {
		return nil, fmt.Errorf("parsing create document folder response: %w", err)
	}

	if len(wire.DocumentFolders) == 0 {
		return nil, nil //nolint:nilnil // the service created nothing
	}

	return n1.DocumentFolderFromWire(&wire.DocumentFolders[0], p.client.app)
}

// GetDocumentFoldersPaged implements n1.ProjectClient.GetDocumentFoldersPaged.
func (p *ProjectClient) GetDocumentFoldersPaged(ctx context.Context, parentID, cursor string) (*n1.QueryResult[*n1.DocumentFolderCollection], error) {
	query := url.Values{}
	if parentID != "" {
		query.Set("parentId", parentID)
	}

	result, err := getItemsPaged[*n1.DocumentFolderCollection, apimodel.DocumentFolderCollection](ctx, p.client, p.path(pathProjectDocumentFolders), query, cursor)
	if err != nil {
		return nil, fmt.Errorf("listing document folders: %w", err)
	}

	return result, nil
}

// GetAllDocumentFolders implements n1.ProjectClient.GetAllDocumentFolders.
func (p *ProjectClient) GetAllDocumentFolders(ctx context.Context, parentID string) (*n1.DocumentFolderCollection, error) {
	items, err := n1.WalkPages[*n1.DocumentFolder](ctx, func(ctx context.Context, cursor string) (*n1.QueryResult[*n1.DocumentFolderCollection], error) {
		return p.GetDocumentFoldersPaged(ctx, parentID, cursor)
	})
	if err != nil {
		return nil, err
	}

	return n1.NewDocumentFolderCollection(p.client.app, items...), nil
}

// DeleteDocumentFolder implements n1.ProjectClient.DeleteDocumentFolder.
func (p *ProjectClient) DeleteDocumentFolder(ctx context.Context, documentFolderID string) error {
	err := n1.ValidateID("document folder ID", documentFolderID)
	if err != nil {
		return err
	}

	return p.client.deleteByID(ctx, p.path(pathProjectDocumentFolders), documentFolderID)
}

// GetField implements n1.ProjectClient.GetField.
func (p *ProjectClient) GetField(ctx context.Context, fieldID string) (*n1.Field, error) {
	err := n1.ValidateID("field ID", fieldID)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.httpClient.Get(ctx, fieldPath(pathProjectField, p.organizationID, p.id, fieldID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting field: %w", err)
	}

	wire, err := apimodel.FromJSON[apimodel.Field](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing field response: %w", err)
	}

	return n1.FieldFromWire(wire, p.client.app)
}

// UpdateField implements n1.ProjectClient.UpdateField.
func (p *ProjectClient) UpdateField(ctx context.Context, field *n1.Field) (*n1.Field, error) {
	if field == nil {
		return nil, fmt.Errorf("field: %w", n1.ErrBlankValue)
	}

	err := n1.ValidateID("field ID", field.ID())
	if err != nil {
		return nil, err
	}

	resp, err := p.client.httpClient.Put(ctx, fieldPath(pathProjectField, p.organizationID, p.id, field.ID()), field.ToWire())
	if err != nil {
		return nil, fmt.Errorf("updating field: %w", err)
	}

	wire, err := apimodel.FromJSON[apimodel.Field](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing field response: %w", err)
	}

	return n1.FieldFromWire(wire, p.client.app)
}

// DeleteField implements n1.ProjectClient.DeleteField.
func (p *ProjectClient) DeleteField(ctx context.Context, fieldID string) error {
	err := n1.ValidateID("field ID", fieldID)
	if err != nil {
		return err
	}

	return p.client.deleteByID(ctx, p.path(pathProjectFields), fieldID)
}

// GetFieldsPaged implements n1.ProjectClient.GetFieldsPaged.
func (p *ProjectClient) GetFieldsPaged(ctx context.Context, cursor string) (*n1.QueryResult[*n1.FieldCollection], error) {
	result, err := getItemsPaged[*n1.FieldCollection, apimodel.FieldCollection](ctx, p.client, p.path(pathProjectFields), nil, cursor)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	return result, nil
}

// GetAllFields implements n1.ProjectClient.GetAllFields.
func (p *ProjectClient) GetAllFields(ctx context.Context) (*n1.FieldCollection, error) {
	items, err := n1.WalkPages[*n1.Field](ctx, p.GetFieldsPaged)
	if err != nil {
		return nil, err
	}

	return n1.NewFieldCollection(p.client.app, items...), nil
}

// CreateFields implements n1.ProjectClient.CreateFields.
func (p *ProjectClient) CreateFields(ctx context.Context, fields *n1.FieldCollection) (*n1.FieldCollection, error) {
	wire := fields.ToWire()

	req, err := jsonArrayRequest[apimodel.Field](http.MethodPost, p.path(pathProjectFields), nil, &wire)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating fields: %w", err)
	}

	created, err := apimodel.CollectionFromJSONArray[apimodel.FieldCollection](resp.Body, apimodel.ParseEntity[apimodel.Field])
	if err != nil {
		return nil, fmt.Errorf("parsing create fields response: %w", err)
	}

	return convertCollection[*n1.FieldCollection](created, p.client.app)
}

func metaFieldFiltersQuery(filters []apimodel.MetaFieldFilter) (url.Values, error) {
	encoded, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("encoding metadata filters: %w", err)
	}

	return url.Values{"metaFieldFilters_json": []string{string(encoded)}}, nil
}

// GetMemberByEmailAddress implements n1.ProjectClient.GetMemberByEmailAddress.
func (p *ProjectClient) GetMemberByEmailAddress(ctx context.Context, emailAddress string) (*n1.ProjectMember, error) {
	err := n1.ValidateID("email address", emailAddress)
	if err != nil {
		return nil, err
	}

	query, err := metaFieldFiltersQuery([]apimodel.MetaFieldFilter{{
		FieldID:    filterFieldUserEmail,
		FieldType:  filterFieldTypeText,
		FieldValue: emailAddress,
		Operator:   filterOperatorEquals,
	}})
	if err != nil {
		return nil, err
	}

	page, err := getItemsPaged[*n1.ProjectMemberCollection, apimodel.ProjectMemberCollection](ctx, p.client, p.path(pathProjectMembers), query, "")
	if err != nil {
		return nil, fmt.Errorf("finding project member: %w", err)
	}

	if page == nil || page.Results().Len() == 0 {
		return nil, nil //nolint:nilnil // no member has that address
	}

	return page.Results().At(0), nil
}

// GetMembersPaged implements n1.ProjectClient.GetMembersPaged.
func (p *ProjectClient) GetMembersPaged(ctx context.Context, cursor string) (*n1.QueryResult[*n1.ProjectMemberCollection], error) {
	result, err := getItemsPaged[*n1.ProjectMemberCollection, apimodel.ProjectMemberCollection](ctx, p.client, p.path(pathProjectMembers), nil, cursor)
	if err != nil {
		return nil, fmt.Errorf("listing project members: %w", err)
	}

	return result, nil
}

// GetAllMembers implements n1.ProjectClient.GetAllMembers.
func (p *ProjectClient) GetAllMembers(ctx context.Context) (*n1.ProjectMemberCollection, error) {
	items, err := n1.WalkPages[*n1.ProjectMember](ctx, p.GetMembersPaged)
	if err != nil {
		return nil, err
	}

	return n1.NewProjectMemberCollection(p.client.app, items...), nil
}

// AddMembers implements n1.ProjectClient.AddMembers.
func (p *ProjectClient) AddMembers(ctx context.Context, members *n1.ProjectMemberCollection) (*n1.ProjectMemberCollection, error) {
	query := url.Values{
		"homePath":    []string{n1.OrganizationLink(p.organizationID, n1.HomePath())},
		"projectPath": []string{n1.OrganizationLink(p.organizationID, n1.ProjectPath(p.id))},
	}

	wire := members.ToWire()

	req, err := jsonArrayRequest[apimodel.ProjectMember](http.MethodPost, p.path(pathProjectMembers), query, &wire)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("adding project members: %w", err)
	}

	added, err := apimodel.CollectionFromJSONArray[apimodel.ProjectMemberCollection](resp.Body, apimodel.ParseEntity[apimodel.ProjectMember])
	if err != nil {
		return nil, fmt.Errorf("parsing add members response: %w", err)
	}

	return convertCollection[*n1.ProjectMemberCollection](added, p.client.app)
}

// GetTagsPaged implements n1.ProjectClient.GetTagsPaged.
func (p *ProjectClient) GetTagsPaged(ctx context.Context, includeAssetItems *bool, cursor string) (*n1.QueryResult[*n1.TagCollection], error) {
	query := url.Values{}
	if includeAssetItems != nil {
		query.Set("includeAssetItems", strconv.FormatBool(*includeAssetItems))
	}

	result, err := getItemsPaged[*n1.TagCollection, apimodel.TagCollection](ctx, p.client, p.path(pathProjectTags), query, cursor)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	return result, nil
}

// GetAllTags implements n1.ProjectClient.GetAllTags.
func (p *ProjectClient) GetAllTags(ctx context.Context, includeAssetItems *bool) (*n1.TagCollection, error) {
	items, err := n1.WalkPages[*n1.Tag](ctx, func(ctx context.Context, cursor string) (*n1.QueryResult[*n1.TagCollection], error) {
		return p.GetTagsPaged(ctx, includeAssetItems, cursor)
	})
	if err != nil {
		return nil, err
	}

	return n1.NewTagCollection(p.client.app, items...), nil
}

// searchFilters builds one equals filter per text field, in field ID order, followed by the
// project restriction.
func (p *ProjectClient) searchFilters(fieldIDsAndValues map[string]string) []apimodel.MetaFieldFilter {
	fieldIDs := make([]string, 0, len(fieldIDsAndValues))
	for fieldID := range fieldIDsAndValues {
		fieldIDs = append(fieldIDs, fieldID)
	}

	slices.Sort(fieldIDs)

	filters := make([]apimodel.MetaFieldFilter, 0, len(fieldIDs)+1)
	for _, fieldID := range fieldIDs {
		filters = append(filters, apimodel.MetaFieldFilter{
			FieldID:    fmt.Sprintf(filterFieldTextFormat, fieldID),
			FieldType:  filterFieldTypeText,
			FieldValue: fieldIDsAndValues[fieldID],
			Operator:   filterOperatorEquals,
		})
	}

	return append(filters, apimodel.MetaFieldFilter{
		FieldID:    filterFieldProjectID,
		FieldType:  filterFieldTypeText,
		FieldValue: p.id,
		Operator:   filterOperatorEquals,
	})
}

// SearchDocumentsPaged implements n1.ProjectClient.SearchDocumentsPaged.
func (p *ProjectClient) SearchDocumentsPaged(ctx context.Context, fieldIDsAndValues map[string]string, cursor string) (*n1.QueryResult[*n1.SearchResultCollection], error) {
	query, err := metaFieldFiltersQuery(p.searchFilters(fieldIDsAndValues))
	if err != nil {
		return nil, err
	}

	query.Set("contentType", contentTypeDocument)

	path := organizationPath(pathOrganizationSearchResults, p.organizationID)

	result, err := getItemsPaged[*n1.SearchResultCollection, apimodel.SearchResultCollection](ctx, p.client, path, query, cursor)
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}

	return result, nil
}

// SearchAllDocuments implements n1.ProjectClient.SearchAllDocuments.
func (p *ProjectClient) SearchAllDocuments(ctx context.Context, fieldIDsAndValues map[string]string) (*n1.SearchResultCollection, error) {
	items, err := n1.WalkPages[*n1.SearchResult](ctx, func(ctx context.Context, cursor string) (*n1.QueryResult[*n1.SearchResultCollection], error) {
		return p.SearchDocumentsPaged(ctx, fieldIDsAndValues, cursor)
	})
	if err != nil {
		return nil, err
	}

	return n1.NewSearchResultCollection(p.client.app, items...), nil
}

// SendDocumentToRecycleBin implements n1.ProjectClient.SendDocumentToRecycleBin.
func (p *ProjectClient) SendDocumentToRecycleBin(ctx context.Context, documentID string) error {
	err := n1.ValidateID("document ID", documentID)
	if err != nil {
		return err
	}

	_, err = p.client.httpClient.Post(ctx, p.path(pathProjectDocumentActionsRecycle), apimodel.IDList{IDs: []string{documentID}})
	if err != nil {
		return fmt.Errorf("sending document to recycle bin: %w", err)
	}

	return nil
}

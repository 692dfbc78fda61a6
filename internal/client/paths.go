package client

import (
	"net/url"
	"strings"
)

// API path formats, relative to the /api/v1 base.
const (
	pathOrganizations                 = "/organizations"
	pathOrganization                  = "/organizations/<organizationId>"
	pathOrganizationMembers           = "/organizations/<organizationId>/members"
	pathOrganizationSearchResults     = "/organizations/<organizationId>/searchResults"
	pathOrganizationProjects          = "/organizations/<organizationId>/projects"
	pathProject                       = "/organizations/<organizationId>/projects/<projectId>"
	pathProjectDocumentFolders        = pathProject + "/documentFolders"
	pathProjectDocumentUploads        = pathProject + "/documentUploads"
	pathProjectDocumentActionsRecycle = pathProject + "/documentActions/sendToRecycleBin"
	pathProjectFields                 = pathProject + "/fields"
	pathProjectField                  = pathProject + "/fields/<fieldId>"
	pathProjectFieldListItems         = pathProject + "/fields/<fieldId>/listItems"
	pathProjectMembers                = pathProject + "/members"
	pathProjectTags                   = pathProject + "/tags"
	placeholderOrganizationID         = "<organizationId>"
	placeholderProjectID              = "<projectId>"
	placeholderFieldID                = "<fieldId>"
)

// apiPath fills the placeholders of format. Pairs are placeholder, value; values are
// path-escaped.
func apiPath(format string, pairs ...string) string {
	replacements := make([]string, len(pairs))
	for i, value := range pairs {
		if i%2 == 1 {
			value = url.PathEscape(value)
		}

		replacements[i] = value
	}

	return strings.NewReplacer(replacements...).Replace(format)
}

func organizationPath(format, organizationID string) string {
	return apiPath(format, placeholderOrganizationID, organizationID)
}

func projectPath(format, organizationID, projectID string) string {
	return apiPath(format,
		placeholderOrganizationID, organizationID,
		placeholderProjectID, projectID)
}

func fieldPath(format, organizationID, projectID, fieldID string) string {
	return apiPath(format,
		placeholderOrganizationID, organizationID,
		placeholderProjectID, projectID,
		placeholderFieldID, fieldID)
}

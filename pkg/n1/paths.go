package n1

import (
	"strings"
)

// OrganizationLink returns the web-app link for path within an organization.
func OrganizationLink(organizationID, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return "/organizations/" + organizationID + "/link" + path
}

// ProjectsPath is the web-app projects path.
func ProjectsPath() string {
	return "/projects"
}

// ProjectPath is the web-app path of one project.
func ProjectPath(projectID string) string {
	return ProjectsPath() + "/" + projectID
}

// HomePath is the web-app home path.
func HomePath() string {
	return "/home"
}

// WorkspacePath is the web-app workspace path.
func WorkspacePath() string {
	return "/workspace"
}

// WorkspaceDocumentFoldersPath is the web-app path of a project's folder tree.
func WorkspaceDocumentFoldersPath(projectID string) string {
	return WorkspacePath() + "/documents/projects/" + projectID + "/documentFolders"
}

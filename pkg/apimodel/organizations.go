package apimodel

// OrganizationForClient is an organization as seen by the calling user.
type OrganizationForClient struct {
	ID                   string `json:"ID,omitempty"                  yaml:"ID,omitempty"`
	Name                 string `json:"Name,omitempty"                yaml:"Name,omitempty"`
	NameLower            string `json:"NameLower,omitempty"           yaml:"NameLower,omitempty"`
	CreatedOn            string `json:"CreatedOn,omitempty"           yaml:"CreatedOn,omitempty"`
	CreatedByUserID      string `json:"CreatedByUserID,omitempty"     yaml:"CreatedByUserID,omitempty"`
	CreatedByUserName    string `json:"CreatedByUserName,omitempty"   yaml:"CreatedByUserName,omitempty"`
	CreatedByUserEmail   string `json:"CreatedByUserEmail,omitempty"  yaml:"CreatedByUserEmail,omitempty"`
	Disabled             *bool  `json:"Disabled,omitempty"            yaml:"Disabled,omitempty"`
	IsMarkedForPurge     *bool  `json:"IsMarkedForPurge,omitempty"    yaml:"IsMarkedForPurge,omitempty"`
	PurgeMarkedOn        string `json:"PurgeMarkedOn,omitempty"       yaml:"PurgeMarkedOn,omitempty"`
	UserMemberIsAdmin    bool   `json:"UserMemberIsAdmin"             yaml:"UserMemberIsAdmin"`
	UserMemberIsReadOnly bool   `json:"UserMemberIsReadOnly"          yaml:"UserMemberIsReadOnly"`
	LogoURL              string `json:"LogoURL,omitempty"             yaml:"LogoURL,omitempty"`
	SubscriptionEndedOn  string `json:"SubscriptionEndedOn,omitempty" yaml:"SubscriptionEndedOn,omitempty"`
}

// OrganizationForClientCollection is the object-root organizations list.
type OrganizationForClientCollection struct {
	Organizations []OrganizationForClient `json:"Organizations" yaml:"Organizations"`
}

// Entities implements Collection.
func (c *OrganizationForClientCollection) Entities() []OrganizationForClient {
	return c.Organizations
}

func (c *OrganizationForClientCollection) setEntities(items []OrganizationForClient) {
	c.Organizations = items
}

// OrganizationMember is a user's membership in an organization.
type OrganizationMember struct {
	ID               string `json:"ID,omitempty"               yaml:"ID,omitempty"`
	CreatedOn        string `json:"CreatedOn,omitempty"        yaml:"CreatedOn,omitempty"`
	OrganizationID   string `json:"OrganizationID,omitempty"   yaml:"OrganizationID,omitempty"`
	OrganizationName string `json:"OrganizationName,omitempty" yaml:"OrganizationName,omitempty"`
	UserID           string `json:"UserID,omitempty"           yaml:"UserID,omitempty"`
	UserName         string `json:"UserName,omitempty"         yaml:"UserName,omitempty"`
	UserNameLower    string `json:"UserNameLower,omitempty"    yaml:"UserNameLower,omitempty"`
	UserEmail        string `json:"UserEmail,omitempty"        yaml:"UserEmail,omitempty"`
	Disabled         bool   `json:"Disabled"                   yaml:"Disabled"`
	IsReadOnly       bool   `json:"IsReadOnly"                 yaml:"IsReadOnly"`
	IsAdmin          bool   `json:"IsAdmin"                    yaml:"IsAdmin"`
}

// OrganizationMemberCollection is the organization members list.
type OrganizationMemberCollection struct {
	OrganizationMembers []OrganizationMember `json:"OrganizationMembers" yaml:"OrganizationMembers"`
}

// Entities implements Collection.
func (c *OrganizationMemberCollection) Entities() []OrganizationMember {
	return c.OrganizationMembers
}

func (c *OrganizationMemberCollection) setEntities(items []OrganizationMember) {
	c.OrganizationMembers = items
}

// OrganizationProject is a project inside an organization.
type OrganizationProject struct {
	ID                     string `json:"ID,omitempty"                     yaml:"ID,omitempty"`
	OrganizationID         string `json:"OrganizationID,omitempty"         yaml:"OrganizationID,omitempty"`
	AccessType             string `json:"AccessType,omitempty"             yaml:"AccessType,omitempty"`
	CreatedOn              string `json:"CreatedOn,omitempty"              yaml:"CreatedOn,omitempty"`
	CreatedByUserID        string `json:"CreatedByUserID,omitempty"        yaml:"CreatedByUserID,omitempty"`
	CreatedByUserEmail     string `json:"CreatedByUserEmail,omitempty"     yaml:"CreatedByUserEmail,omitempty"`
	CreatedByUserName      string `json:"CreatedByUserName,omitempty"      yaml:"CreatedByUserName,omitempty"`
	Name                   string `json:"Name,omitempty"                   yaml:"Name,omitempty"`
	NameLower              string `json:"NameLower,omitempty"              yaml:"NameLower,omitempty"`
	Disabled               *bool  `json:"Disabled,omitempty"               yaml:"Disabled,omitempty"`
	IsMarkedForPurge       *bool  `json:"IsMarkedForPurge,omitempty"       yaml:"IsMarkedForPurge,omitempty"`
	PurgeMarkedOn          string `json:"PurgeMarkedOn,omitempty"          yaml:"PurgeMarkedOn,omitempty"`
	PurgeMarkedByUserID    string `json:"PurgeMarkedByUserID,omitempty"    yaml:"PurgeMarkedByUserID,omitempty"`
	PurgeMarkedByUserName  string `json:"PurgeMarkedByUserName,omitempty"  yaml:"PurgeMarkedByUserName,omitempty"`
	PurgeMarkedByUserEmail string `json:"PurgeMarkedByUserEmail,omitempty" yaml:"PurgeMarkedByUserEmail,omitempty"`
}

// OrganizationProjectCollection is the projects list.
type OrganizationProjectCollection struct {
	Projects []OrganizationProject `json:"Projects" yaml:"Projects"`
}

// Entities implements Collection.
func (c *OrganizationProjectCollection) Entities() []OrganizationProject {
	return c.Projects
}

func (c *OrganizationProjectCollection) setEntities(items []OrganizationProject) {
	c.Projects = items
}

// NewProject is the request shape for creating a project.
type NewProject struct {
	Name              string `json:"Name"               yaml:"Name"`
	AccessType        string `json:"AccessType"         yaml:"AccessType"`
	SourceID          string `json:"SourceID,omitempty" yaml:"SourceID,omitempty"`
	SourceContentCopy bool   `json:"SourceContentCopy"  yaml:"SourceContentCopy"`
}

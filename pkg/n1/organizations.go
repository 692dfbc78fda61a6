package n1

import (
	"fmt"
	"slices"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
)

// OrganizationForClient is an organization the calling user belongs to.
type OrganizationForClient struct {
	app *App

	id                   string
	name                 string
	nameLower            string
	createdOn            string
	createdByUserID      string
	createdByUserName    string
	createdByUserEmail   string
	disabled             bool
	isMarkedForPurge     bool
	purgeMarkedOn        string
	userMemberIsAdmin    bool
	userMemberIsReadOnly bool
	logoURL              string
	subscriptionEndedOn  string
}

// OrganizationForClientFromWire builds an OrganizationForClient from its wire form. A nil wire value yields nil.
func OrganizationForClientFromWire(wire *apimodel.OrganizationForClient, app *App) (*OrganizationForClient, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &OrganizationForClient{
		app:                  app,
		id:                   wire.ID,
		name:                 wire.Name,
		nameLower:            wire.NameLower,
		createdOn:            wire.CreatedOn,
		createdByUserID:      wire.CreatedByUserID,
		createdByUserName:    wire.CreatedByUserName,
		createdByUserEmail:   wire.CreatedByUserEmail,
		disabled:             valueOf(wire.Disabled),
		isMarkedForPurge:     valueOf(wire.IsMarkedForPurge),
		purgeMarkedOn:        wire.PurgeMarkedOn,
		userMemberIsAdmin:    wire.UserMemberIsAdmin,
		userMemberIsReadOnly: wire.UserMemberIsReadOnly,
		logoURL:              wire.LogoURL,
		subscriptionEndedOn:  wire.SubscriptionEndedOn,
	}, nil
}

// ToWire projects the OrganizationForClient back to its wire form.
func (o *OrganizationForClient) ToWire() apimodel.OrganizationForClient {
	return apimodel.OrganizationForClient{
		ID:                   o.id,
		Name:                 o.name,
		NameLower:            o.nameLower,
		CreatedOn:            o.createdOn,
		CreatedByUserID:      o.createdByUserID,
		CreatedByUserName:    o.createdByUserName,
		CreatedByUserEmail:   o.createdByUserEmail,
		Disabled:             ptrTo(o.disabled),
		IsMarkedForPurge:     ptrTo(o.isMarkedForPurge),
		PurgeMarkedOn:        o.purgeMarkedOn,
		UserMemberIsAdmin:    o.userMemberIsAdmin,
		UserMemberIsReadOnly: o.userMemberIsReadOnly,
		LogoURL:              o.logoURL,
		SubscriptionEndedOn:  o.subscriptionEndedOn,
	}
}

// App returns the App the organization was loaded through.
func (o *OrganizationForClient) App() *App {
	return o.app
}

// ID returns the organization ID.
func (o *OrganizationForClient) ID() string {
	return o.id
}

// Name returns the display name.
func (o *OrganizationForClient) Name() string {
	return o.name
}

func (o *OrganizationForClient) NameLower() string {
	return o.nameLower
}

func (o *OrganizationForClient) CreatedOn() string {
	return o.createdOn
}

func (o *OrganizationForClient) CreatedByUserID() string {
	return o.createdByUserID
}

func (o *OrganizationForClient) CreatedByUserName() string {
	return o.createdByUserName
}

func (o *OrganizationForClient) CreatedByUserEmail() string {
	return o.createdByUserEmail
}

// Disabled reports whether the organization is disabled. A missing value reads as false.
func (o *OrganizationForClient) Disabled() bool {
	return o.disabled
}

func (o *OrganizationForClient) IsMarkedForPurge() bool {
	return o.isMarkedForPurge
}

func (o *OrganizationForClient) PurgeMarkedOn() string {
	return o.purgeMarkedOn
}

// UserMemberIsAdmin reports whether the calling user administers the organization.
func (o *OrganizationForClient) UserMemberIsAdmin() bool {
	return o.userMemberIsAdmin
}

func (o *OrganizationForClient) UserMemberIsReadOnly() bool {
	return o.userMemberIsReadOnly
}

func (o *OrganizationForClient) LogoURL() string {
	return o.logoURL
}

func (o *OrganizationForClient) SubscriptionEndedOn() string {
	return o.subscriptionEndedOn
}

// OrganizationForClientCollection is an ordered list of organizations.
type OrganizationForClientCollection struct {
	EntityCollection[*OrganizationForClient]
}

// NewOrganizationForClientCollection creates a collection from organizations that were already built.
func NewOrganizationForClientCollection(app *App, items ...*OrganizationForClient) *OrganizationForClientCollection {
	return &OrganizationForClientCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// OrganizationForClientCollectionFromWire converts a wire list of organizations, preserving length and order.
func OrganizationForClientCollectionFromWire(wire *apimodel.OrganizationForClientCollection, app *App) (*OrganizationForClientCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.Organizations, app, OrganizationForClientFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting organizations: %w", err)
	}

	return &OrganizationForClientCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*OrganizationForClientCollection) FromWire(wire *apimodel.OrganizationForClientCollection, app *App) (*OrganizationForClientCollection, error) {
	return OrganizationForClientCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *OrganizationForClientCollection) ToWire() apimodel.OrganizationForClientCollection {
	if c == nil {
		return apimodel.OrganizationForClientCollection{}
	}

	return apimodel.OrganizationForClientCollection{Organizations: entitiesToWire[*OrganizationForClient, apimodel.OrganizationForClient](c.items)}
}

// OrganizationMember is a user's membership in an organization.
type OrganizationMember struct {
	app *App

	id               string
	createdOn        string
	organizationID   string
	organizationName string
	userID           string
	userName         string
	userNameLower    string
	userEmail        string
	disabled         bool
	isReadOnly       bool
	isAdmin          bool
}

// OrganizationMemberFromWire builds an OrganizationMember from its wire form. A nil wire value yields nil.
func OrganizationMemberFromWire(wire *apimodel.OrganizationMember, app *App) (*OrganizationMember, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &OrganizationMember{
		app:              app,
		id:               wire.ID,
		createdOn:        wire.CreatedOn,
		organizationID:   wire.OrganizationID,
		organizationName: wire.OrganizationName,
		userID:           wire.UserID,
		userName:         wire.UserName,
		userNameLower:    wire.UserNameLower,
		userEmail:        wire.UserEmail,
		disabled:         wire.Disabled,
		isReadOnly:       wire.IsReadOnly,
		isAdmin:          wire.IsAdmin,
	}, nil
}

// ToWire projects the OrganizationMember back to its wire form.
func (m *OrganizationMember) ToWire() apimodel.OrganizationMember {
	return apimodel.OrganizationMember{
		ID:               m.id,
		CreatedOn:        m.createdOn,
		OrganizationID:   m.organizationID,
		OrganizationName: m.organizationName,
		UserID:           m.userID,
		UserName:         m.userName,
		UserNameLower:    m.userNameLower,
		UserEmail:        m.userEmail,
		Disabled:         m.disabled,
		IsReadOnly:       m.isReadOnly,
		IsAdmin:          m.isAdmin,
	}
}

// App returns the App the organization member was loaded through.
func (m *OrganizationMember) App() *App {
	return m.app
}

// ID returns the membership ID.
func (m *OrganizationMember) ID() string {
	return m.id
}

func (m *OrganizationMember) CreatedOn() string {
	return m.createdOn
}

func (m *OrganizationMember) OrganizationID() string {
	return m.organizationID
}

func (m *OrganizationMember) OrganizationName() string {
	return m.organizationName
}

func (m *OrganizationMember) UserID() string {
	return m.userID
}

func (m *OrganizationMember) UserName() string {
	return m.userName
}

func (m *OrganizationMember) UserNameLower() string {
	return m.userNameLower
}

func (m *OrganizationMember) UserEmail() string {
	return m.userEmail
}

func (m *OrganizationMember) Disabled() bool {
	return m.disabled
}

func (m *OrganizationMember) IsReadOnly() bool {
	return m.isReadOnly
}

func (m *OrganizationMember) IsAdmin() bool {
	return m.isAdmin
}

// OrganizationMemberCollection is an ordered list of organization members.
type OrganizationMemberCollection struct {
	EntityCollection[*OrganizationMember]
}

// NewOrganizationMemberCollection creates a collection from organization members that were already built.
func NewOrganizationMemberCollection(app *App, items ...*OrganizationMember) *OrganizationMemberCollection {
	return &OrganizationMemberCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// OrganizationMemberCollectionFromWire converts a wire list of organization members, preserving length and order.
func OrganizationMemberCollectionFromWire(wire *apimodel.OrganizationMemberCollection, app *App) (*OrganizationMemberCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.OrganizationMembers, app, OrganizationMemberFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting organization members: %w", err)
	}

	return &OrganizationMemberCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*OrganizationMemberCollection) FromWire(wire *apimodel.OrganizationMemberCollection, app *App) (*OrganizationMemberCollection, error) {
	return OrganizationMemberCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *OrganizationMemberCollection) ToWire() apimodel.OrganizationMemberCollection {
	if c == nil {
		return apimodel.OrganizationMemberCollection{}
	}

	return apimodel.OrganizationMemberCollection{OrganizationMembers: entitiesToWire[*OrganizationMember, apimodel.OrganizationMember](c.items)}
}

// OrganizationProject is a project inside an organization.
type OrganizationProject struct {
	app *App

	id                     string
	organizationID         string
	accessType             string
	createdOn              string
	createdByUserID        string
	createdByUserEmail     string
	createdByUserName      string
	name                   string
	nameLower              string
	disabled               bool
	isMarkedForPurge       bool
	purgeMarkedOn          string
	purgeMarkedByUserID    string
	purgeMarkedByUserName  string
	purgeMarkedByUserEmail string
}

// OrganizationProjectFromWire builds an OrganizationProject from its wire form. A nil wire value yields nil.
func OrganizationProjectFromWire(wire *apimodel.OrganizationProject, app *App) (*OrganizationProject, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &OrganizationProject{
		app:                    app,
		id:                     wire.ID,
		organizationID:         wire.OrganizationID,
		accessType:             wire.AccessType,
		createdOn:              wire.CreatedOn,
		createdByUserID:        wire.CreatedByUserID,
		createdByUserEmail:     wire.CreatedByUserEmail,
		createdByUserName:      wire.CreatedByUserName,
		name:                   wire.Name,
		nameLower:              wire.NameLower,
		disabled:               valueOf(wire.Disabled),
		isMarkedForPurge:       valueOf(wire.IsMarkedForPurge),
		purgeMarkedOn:          wire.PurgeMarkedOn,
		purgeMarkedByUserID:    wire.PurgeMarkedByUserID,
		purgeMarkedByUserName:  wire.PurgeMarkedByUserName,
		purgeMarkedByUserEmail: wire.PurgeMarkedByUserEmail,
	}, nil
}

// ToWire projects the OrganizationProject back to its wire form.
func (p *OrganizationProject) ToWire() apimodel.OrganizationProject {
	return apimodel.OrganizationProject{
		ID:                     p.id,
		OrganizationID:         p.organizationID,
		AccessType:             p.accessType,
		CreatedOn:              p.createdOn,
		CreatedByUserID:        p.createdByUserID,
		CreatedByUserEmail:     p.createdByUserEmail,
		CreatedByUserName:      p.createdByUserName,
		Name:                   p.name,
		NameLower:              p.nameLower,
		Disabled:               ptrTo(p.disabled),
		IsMarkedForPurge:       ptrTo(p.isMarkedForPurge),
		PurgeMarkedOn:          p.purgeMarkedOn,
		PurgeMarkedByUserID:    p.purgeMarkedByUserID,
		PurgeMarkedByUserName:  p.purgeMarkedByUserName,
		PurgeMarkedByUserEmail: p.purgeMarkedByUserEmail,
	}
}

// App returns the App the project was loaded through.
func (p *OrganizationProject) App() *App {
	return p.app
}

// ID returns the project ID.
func (p *OrganizationProject) ID() string {
	return p.id
}

func (p *OrganizationProject) OrganizationID() string {
	return p.organizationID
}

// AccessType returns the project access type, one of the ProjectAccessType values.
func (p *OrganizationProject) AccessType() string {
	return p.accessType
}

func (p *OrganizationProject) CreatedOn() string {
	return p.createdOn
}

func (p *OrganizationProject) CreatedByUserID() string {
	return p.createdByUserID
}

func (p *OrganizationProject) CreatedByUserEmail() string {
	return p.createdByUserEmail
}

func (p *OrganizationProject) CreatedByUserName() string {
	return p.createdByUserName
}

func (p *OrganizationProject) Name() string {
	return p.name
}

func (p *OrganizationProject) NameLower() string {
	return p.nameLower
}

func (p *OrganizationProject) Disabled() bool {
	return p.disabled
}

func (p *OrganizationProject) IsMarkedForPurge() bool {
	return p.isMarkedForPurge
}

func (p *OrganizationProject) PurgeMarkedOn() string {
	return p.purgeMarkedOn
}

func (p *OrganizationProject) PurgeMarkedByUserID() string {
	return p.purgeMarkedByUserID
}

func (p *OrganizationProject) PurgeMarkedByUserName() string {
	return p.purgeMarkedByUserName
}

func (p *OrganizationProject) PurgeMarkedByUserEmail() string {
	return p.purgeMarkedByUserEmail
}

// OrganizationProjectCollection is an ordered list of projects.
type OrganizationProjectCollection struct {
	EntityCollection[*OrganizationProject]
}

// NewOrganizationProjectCollection creates a collection from projects that were already built.
func NewOrganizationProjectCollection(app *App, items ...*OrganizationProject) *OrganizationProjectCollection {
	return &OrganizationProjectCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// OrganizationProjectCollectionFromWire converts a wire list of projects, preserving length and order.
func OrganizationProjectCollectionFromWire(wire *apimodel.OrganizationProjectCollection, app *App) (*OrganizationProjectCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.Projects, app, OrganizationProjectFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting projects: %w", err)
	}

	return &OrganizationProjectCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*OrganizationProjectCollection) FromWire(wire *apimodel.OrganizationProjectCollection, app *App) (*OrganizationProjectCollection, error) {
	return OrganizationProjectCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *OrganizationProjectCollection) ToWire() apimodel.OrganizationProjectCollection {
	if c == nil {
		return apimodel.OrganizationProjectCollection{}
	}

	return apimodel.OrganizationProjectCollection{Projects: entitiesToWire[*OrganizationProject, apimodel.OrganizationProject](c.items)}
}

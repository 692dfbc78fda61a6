package n1

import (
	"net/url"
	"strconv"
)

// StandardQuery holds the paging and sorting parameters most list endpoints accept. Unset
// fields are left out of the query string.
type StandardQuery struct {
	Cursor         string
	SortDescending *bool
	SortType       string
	Offset         *int
}

// ToValues encodes the query.
func (q *StandardQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Cursor != "" {
		values.Set("cursor", q.Cursor)
	}

	if q.SortDescending != nil {
		values.Set("sortDescending", strconv.FormatBool(*q.SortDescending))
	}

	if q.SortType != "" {
		values.Set("sortType", q.SortType)
	}

	if q.Offset != nil {
		values.Set("offset", strconv.Itoa(*q.Offset))
	}

	return values
}

// ProjectAccessType selects which projects a listing returns.
type ProjectAccessType string

// Project access types understood by the service.
const (
	ProjectAccessTypeGlobalAssignmentsMemberContentByDefault         ProjectAccessType = "GlobalAssignments_MemberContentByDefault"
	ProjectAccessTypeMembersOnlyAssignmentsMemberContentByAssignment ProjectAccessType = "MembersOnlyAssignments_MemberContentByAssignment"
)

// ProjectsQuery filters a project listing.
type ProjectsQuery struct {
	ProjectAccessType ProjectAccessType
	NameFilter        string
	GetAll            *bool
	AdminOnly         *bool
}

// ToValues encodes the filter without paging parameters.
func (q *ProjectsQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.ProjectAccessType != "" {
		values.Set("projectAccessType", string(q.ProjectAccessType))
	}

	if q.NameFilter != "" {
		values.Set("nameFilter", q.NameFilter)
	}

	if q.GetAll != nil {
		values.Set("getAll", strconv.FormatBool(*q.GetAll))
	}

	if q.AdminOnly != nil {
		values.Set("adminOnly", strconv.FormatBool(*q.AdminOnly))
	}

	return values
}

// ListItemsQuery filters field list items.
type ListItemsQuery struct {
	Cursor      string
	ValueFilter string
	ParentValue string
}

// ToValues encodes the filter.
func (q *ListItemsQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Cursor != "" {
		values.Set("cursor", q.Cursor)
	}

	if q.ParentValue != "" {
		values.Set("parentValue", q.ParentValue)
	}

	if q.ValueFilter != "" {
		values.Set("valueFilter", q.ValueFilter)
	}

	return values
}

// MergeValues combines query strings, later ones appending to earlier ones.
func MergeValues(values ...url.Values) url.Values {
	merged := url.Values{}
	for _, v := range values {
		for key, vals := range v {
			for _, val := range vals {
				merged.Add(key, val)
			}
		}
	}

	return merged
}

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/fivetwenty-io/n1-client/internal/client"
	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectAPIPath = "/api/v1/organizations/org-1/projects/proj-1"

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProjectClient_DocumentFolders(t *testing.T) {
	t.Parallel()

	t.Run("creates a root folder", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, projectAPIPath+"/documentFolders", r.URL.Path)
			assert.Equal(t,
				"/organizations/org-1/link/workspace/documents/projects/proj-1/documentFolders",
				r.URL.Query().Get("documentFolderPathPrefix"))
			assert.JSONEq(t,
				`[{"ParentID":null,"Name":"Invoices","AssignmentUserEmails":[],"HexColor":null}]`,
				ReadBody(t, r))

			WriteJSON(t, w, http.StatusOK, `[{"ID":"f1","Name":"Invoices"}]`)
		})

		folder, err := project.CreateDocumentFolder(context.Background(), "Invoices", "")
		require.NoError(t, err)
		require.NotNil(t, folder)
		assert.Equal(t, "f1", folder.ID())
		assert.Equal(t, "Invoices", folder.Name())
	})

	t.Run("creates a nested folder", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.JSONEq(t,
				`[{"ParentID":"f1","Name":"2024","AssignmentUserEmails":[],"HexColor":null}]`,
				ReadBody(t, r))

			WriteJSON(t, w, http.StatusOK, `[{"ID":"f2","ParentID":"f1","Name":"2024"}]`)
		})

		folder, err := project.CreateDocumentFolder(context.Background(), "2024", "f1")
		require.NoError(t, err)
		assert.Equal(t, "f1", folder.ParentID())
	})

	t.Run("lists children of a parent", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "f1", r.URL.Query().Get("parentId"))

			WriteJSON(t, w, http.StatusOK, `{"PageSize":0,"DocumentFolders":[{"ID":"f2"},{"ID":"f3"}]}`)
		})

		folders, err := project.GetAllDocumentFolders(context.Background(), "f1")
		require.NoError(t, err)
		assert.Equal(t, 2, folders.Len())
	})

	t.Run("root listing omits parentId", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("parentId"))

			WriteJSON(t, w, http.StatusOK, `{"DocumentFolders":[]}`)
		})

		page, err := project.GetDocumentFoldersPaged(context.Background(), "", "")
		require.NoError(t, err)
		assert.Equal(t, 0, page.Results().Len())
	})

	t.Run("deletes by ID list", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, projectAPIPath+"/documentFolders", r.URL.Path)
			assert.JSONEq(t, `{"IDs":["f1"]}`, ReadBody(t, r))

			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, project.DeleteDocumentFolder(context.Background(), "f1"))
		require.ErrorIs(t, project.DeleteDocumentFolder(context.Background(), ""), n1.ErrBlankValue)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProjectClient_Fields(t *testing.T) {
	t.Parallel()

	t.Run("gets a field", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, projectAPIPath+"/fields/field-1", r.URL.Path)

			WriteJSON(t, w, http.StatusOK, `{"ID":"field-1","Name":"Vendor","Type":"Text","Required":true}`)
		})

		field, err := project.GetField(context.Background(), TestFieldID)
		require.NoError(t, err)
		assert.Equal(t, "Vendor", field.Name())
		assert.True(t, field.Required())
	})

	t.Run("updates a field with PUT", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, projectAPIPath+"/fields/field-1", r.URL.Path)
			assert.JSONEq(t, `{
				"ID":"field-1","Name":"Vendor","Label":"Supplier",
				"Rank":0,"Required":false,"Sensitive":false,"UseCreatedOnAsDefaultValue":false,
				"AllowMultipleLines":false,"DecimalPlaces":0,"SaveNewValues":false,
				"DisplaySelectionList":false,"AllowMultipleValues":false
			}`, ReadBody(t, r))

			WriteJSON(t, w, http.StatusOK, `{"ID":"field-1","Name":"Vendor","Label":"Supplier"}`)
		})

		field, err := n1.FieldFromWire(&apimodel.Field{ID: TestFieldID, Name: "Vendor", Label: "Supplier"}, project.App())
		require.NoError(t, err)

		updated, err := project.UpdateField(context.Background(), field)
		require.NoError(t, err)
		assert.Equal(t, "Supplier", updated.Label())

		_, err = project.UpdateField(context.Background(), nil)
		require.ErrorIs(t, err, n1.ErrBlankValue)
	})

	t.Run("creates fields from an array", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, projectAPIPath+"/fields", r.URL.Path)
			var sent []map[string]any
			assert.NoError(t, json.Unmarshal([]byte(ReadBody(t, r)), &sent))
			assert.Len(t, sent, 2)

			for i, name := range []string{"Vendor", "Amount"} {
				assert.Equal(t, name, sent[i]["Name"])
				assert.Equal(t, false, sent[i]["Required"])
			}

			WriteJSON(t, w, http.StatusOK, `[{"ID":"a","Name":"Vendor"},{"ID":"b","Name":"Amount"}]`)
		})

		vendor, err := n1.FieldFromWire(&apimodel.Field{Name: "Vendor"}, project.App())
		require.NoError(t, err)

		amount, err := n1.FieldFromWire(&apimodel.Field{Name: "Amount"}, project.App())
		require.NoError(t, err)

		created, err := project.CreateFields(context.Background(), n1.NewFieldCollection(project.App(), vendor, amount))
		require.NoError(t, err)
		require.Equal(t, 2, created.Len())
		assert.Equal(t, "b", created.At(1).ID())
	})

	t.Run("walks all fields", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("cursor") == "" {
				WriteJSON(t, w, http.StatusOK, `{"Cursor":"next","PageSize":2,"Fields":[{"ID":"a"},{"ID":"b"}]}`)

				return
			}

			assert.Equal(t, "next", r.URL.Query().Get("cursor"))
			WriteJSON(t, w, http.StatusOK, `{"Cursor":"end","PageSize":2,"Fields":[{"ID":"c"}]}`)
		})

		fields, err := project.GetAllFields(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, fields.Len())
		assert.Equal(t, "c", fields.At(2).ID())
	})

	t.Run("a failing page aborts the walk", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("cursor") == "" {
				WriteJSON(t, w, http.StatusOK, `{"Cursor":"next","PageSize":1,"Fields":[{"ID":"a"}]}`)

				return
			}

			WriteJSON(t, w, http.StatusForbidden, `{"message":"no access"}`)
		})

		fields, err := project.GetAllFields(context.Background())
		require.Error(t, err)
		assert.True(t, n1.IsForbidden(err))
		assert.Nil(t, fields)
	})

	t.Run("deletes a field", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, projectAPIPath+"/fields", r.URL.Path)
			assert.JSONEq(t, `{"IDs":["field-1"]}`, ReadBody(t, r))

			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, project.DeleteField(context.Background(), TestFieldID))
	})
}

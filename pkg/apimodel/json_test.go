package apimodel_test

import (
	"errors"
	"testing"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionFromJSONArray(t *testing.T) {
	t.Parallel()

	t.Run("parses each element with the item parser", func(t *testing.T) {
		t.Parallel()

		collection, err := apimodel.CollectionFromJSONArray[apimodel.FieldCollection](
			[]byte(`[{"Id":"a"},{"Id":"b"}]`),
			apimodel.ParseEntity[apimodel.Field],
		)
		require.NoError(t, err)
		require.Len(t, collection.Entities(), 2)
		assert.Equal(t, "a", collection.Entities()[0].ID)
		assert.Equal(t, "b", collection.Entities()[1].ID)
	})

	t.Run("empty array yields an empty collection", func(t *testing.T) {
		t.Parallel()

		collection, err := apimodel.CollectionFromJSONArray[apimodel.FieldCollection](
			[]byte(`[]`),
			apimodel.ParseEntity[apimodel.Field],
		)
		require.NoError(t, err)
		require.NotNil(t, collection)
		assert.NotNil(t, collection.Entities())
		assert.Empty(t, collection.Entities())
	})

	t.Run("item parser is called once per element in order", func(t *testing.T) {
		t.Parallel()

		var seen []string

		parse := func(data []byte) (apimodel.FieldListItem, error) {
			seen = append(seen, string(data))

			return apimodel.ParseEntity[apimodel.FieldListItem](data)
		}

		collection, err := apimodel.CollectionFromJSONArray[apimodel.FieldListItemCollection](
			[]byte(`[{"Value":"one","Extra":1}, {"Value":"two"}]`),
			parse,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{`{"Value":"one","Extra":1}`, `{"Value":"two"}`}, seen)
		assert.Equal(t, "two", collection.Entities()[1].Value)
	})

	t.Run("malformed JSON surfaces a decode error", func(t *testing.T) {
		t.Parallel()

		_, err := apimodel.CollectionFromJSONArray[apimodel.FieldCollection](
			[]byte(`[{"ID":"a"},`),
			apimodel.ParseEntity[apimodel.Field],
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, apimodel.ErrDecode)
	})

	t.Run("object root is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := apimodel.CollectionFromJSONArray[apimodel.FieldCollection](
			[]byte(`{"Fields":[]}`),
			apimodel.ParseEntity[apimodel.Field],
		)
		require.Error(t, err)

		decodeErr := &apimodel.DecodeError{}
		require.True(t, errors.As(err, &decodeErr))
		assert.Contains(t, decodeErr.Target, "FieldCollection")
	})

	t.Run("item parser failure is propagated", func(t *testing.T) {
		t.Parallel()

		_, err := apimodel.CollectionFromJSONArray[apimodel.FieldCollection](
			[]byte(`[{"ID":"a"},{"ID":5}]`),
			apimodel.ParseEntity[apimodel.Field],
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, apimodel.ErrDecode)
		assert.Contains(t, err.Error(), "element 1")
	})
}

func TestCollectionFromJSON(t *testing.T) {
	t.Parallel()

	collection, err := apimodel.CollectionFromJSON[apimodel.OrganizationProjectCollection](
		[]byte(`{"Projects":[{"ID":"p1","Name":"One"},{"ID":"p2","Name":"Two"}],"Unknown":true}`),
	)
	require.NoError(t, err)
	require.Len(t, collection.Projects, 2)
	assert.Equal(t, "p1", collection.Projects[0].ID)
	assert.Equal(t, "Two", collection.Projects[1].Name)

	_, err = apimodel.CollectionFromJSON[apimodel.OrganizationProjectCollection]([]byte(`{"Projects":`))
	assert.ErrorIs(t, err, apimodel.ErrDecode)
}

func TestCollectionToJSONArray(t *testing.T) {
	t.Parallel()

	data, err := apimodel.CollectionToJSONArray[apimodel.FieldListItem](&apimodel.FieldListItemCollection{
		FieldListItems: []apimodel.FieldListItem{{Value: "a"}, {Value: "b", ParentValue: "p"}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"Value":"a"},{"Value":"b","ParentValue":"p"}]`, string(data))

	data, err = apimodel.CollectionToJSONArray[apimodel.FieldListItem](&apimodel.FieldListItemCollection{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestToJSON_OmitsEmptyStringsKeepsFlags(t *testing.T) {
	t.Parallel()

	data, err := apimodel.ToJSON(apimodel.OrganizationMember{ID: "m1", UserEmail: "a@example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ID":"m1","UserEmail":"a@example.com","Disabled":false,"IsReadOnly":false,"IsAdmin":false}`, string(data))
}

func TestToJSON_KeepsZeroNumbers(t *testing.T) {
	t.Parallel()

	data, err := apimodel.ToJSON(apimodel.DocumentUpload{UniqueID: "u", OriginalFilename: "empty.txt"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"OriginalFileSize":0`)

	data, err = apimodel.ToJSON(apimodel.Field{ID: "f1", Name: "Status"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Required":false`)
}

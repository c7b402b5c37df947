package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tech-pubs/simplified-english/lib/lexicon"
	"gitlab.com/tech-pubs/simplified-english/lib/store"
	"gitlab.com/tech-pubs/simplified-english/lib/store/local"
	"gitlab.com/tech-pubs/simplified-english/lib/store/mocks"
)

func TestLocalClient(t *testing.T) {
	client := local.New()
	assert.True(t, client.Ready())

	require.NoError(t, client.AddForms(store.ApprovedList, "starts", "start"))
	require.NoError(t, client.AddForms(store.ApprovedList, "start", "started"))

	forms, err := client.Forms(store.ApprovedList)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "started", "starts"}, forms)

	forms, err = client.Forms(store.ForbiddenList)
	require.NoError(t, err)
	assert.Empty(t, forms)

	require.NoError(t, client.Drop(store.ApprovedList))
	forms, err = client.Forms(store.ApprovedList)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestSaveAndLoadDerived(t *testing.T) {
	client := local.New()
	derived := lexicon.DerivedLists{
		Approved:  []string{"start", "starts", "started", "starting"},
		Forbidden: []string{"utilize"},
		Allowed:   []string{"STE"},
	}

	require.NoError(t, store.SaveDerived(client, derived))

	loaded, err := store.LoadDerived(client)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "started", "starting", "starts"}, loaded.Approved)
	assert.Equal(t, []string{"utilize"}, loaded.Forbidden)
	assert.Equal(t, []string{"STE"}, loaded.Allowed)
}

func TestSaveDerivedSkipsEmptyLists(t *testing.T) {
	client := local.New()
	derived := lexicon.DerivedLists{
		Approved:  []string{"start"},
		Forbidden: []string{"utilize"},
	}

	require.NoError(t, store.SaveDerived(client, derived))

	loaded, err := store.LoadDerived(client)
	require.NoError(t, err)
	assert.Empty(t, loaded.Allowed)
}

func TestDropAll(t *testing.T) {
	client := local.New()
	require.NoError(t, store.SaveDerived(client, lexicon.DerivedLists{
		Approved:  []string{"start"},
		Forbidden: []string{"utilize"},
		Allowed:   []string{"STE"},
	}))

	require.NoError(t, store.DropAll(client))

	loaded, err := store.LoadDerived(client)
	require.NoError(t, err)
	assert.Empty(t, loaded.Approved)
	assert.Empty(t, loaded.Forbidden)
	assert.Empty(t, loaded.Allowed)
}

func TestSaveDerivedPropagatesErrors(t *testing.T) {
	client := &mocks.Client{}
	client.On("AddForms", store.ApprovedList, []string{"start"}).Return(assert.AnError).Once()

	err := store.SaveDerived(client, lexicon.DerivedLists{Approved: []string{"start"}})
	assert.ErrorIs(t, err, assert.AnError)
	client.AssertExpectations(t)
}

func TestLoadDerivedPropagatesErrors(t *testing.T) {
	client := &mocks.Client{}
	client.On("Forms", store.ApprovedList).Return(nil, assert.AnError).Once()

	_, err := store.LoadDerived(client)
	assert.ErrorIs(t, err, assert.AnError)
	client.AssertExpectations(t)
}

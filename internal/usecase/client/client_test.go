package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-booker/internal/audit"
	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/infra/repository/memory"
	"github.com/BruksfildServices01/slot-booker/internal/logging"
)

func newUseCases(t *testing.T) (*CreateClient, *ListClients) {
	t.Helper()
	log := logging.Discard()
	store := memory.NewStore()
	d := audit.NewDispatcher(log)
	t.Cleanup(func() { _ = d.Close(context.Background()) })
	return NewCreateClient(store, d, log, false), NewListClients(store)
}

func TestCreateClientNormalizesEmail(t *testing.T) {
	create, list := newUseCases(t)

	c, err := create.Execute(context.Background(), CreateClientInput{Name: " Ana ", Email: " Ana@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, "ana@example.com", c.Email)

	all, err := list.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, c.ID, all[0].ID)
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	create, _ := newUseCases(t)

	_, err := create.Execute(context.Background(), CreateClientInput{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), CreateClientInput{Name: "Other", Email: "ANA@example.com"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateEmail))
}

func TestCreateClientValidation(t *testing.T) {
	create, _ := newUseCases(t)

	for _, in := range []CreateClientInput{
		{Name: "", Email: "ana@example.com"},
		{Name: "Ana", Email: ""},
		{Name: "Ana", Email: "not-an-email"},
	} {
		_, err := create.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest), "input %+v", in)
	}
}

func TestCreateClientDomainCheck(t *testing.T) {
	create, _ := newUseCases(t)
	create.checkDomain = func(string) bool { return false }

	_, err := create.Execute(context.Background(), CreateClientInput{Name: "Ana", Email: "ana@nowhere.invalid"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest))
}
